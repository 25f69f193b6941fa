/*
 * Copyright © 2026 Kaleido, Inc.
 *
 * Licensed under the Apache License, Version 2.0 (the "License"); you may not use this file except in compliance with
 * the License. You may obtain a copy of the License at
 *
 * http://www.apache.org/licenses/LICENSE-2.0
 *
 * Unless required by applicable law or agreed to in writing, software distributed under the License is distributed on
 * an "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied. See the License for the
 * specific language governing permissions and limitations under the License.
 *
 * SPDX-License-Identifier: Apache-2.0
 */

package persistence

import (
	"context"
	"path/filepath"
	"runtime"

	"github.com/alexmedkex/forkly-sub001/pkg/confutil"
	"github.com/alexmedkex/forkly-sub001/pkg/tfconf"
)

// NewUnitTestPersistence returns an in-memory DB with all migrations applied,
// for unit tests throughout the project that want to test against a real DB
func NewUnitTestPersistence(ctx context.Context) (Persistence, func(), error) {
	_, thisFile, _, _ := runtime.Caller(0)
	p, err := newSQLiteProvider(ctx, &tfconf.DBConfig{
		Type: TypeSQLite,
		SQLite: tfconf.SQLiteConfig{
			SQLDBConfig: tfconf.SQLDBConfig{
				DSN:           ":memory:",
				AutoMigrate:   confutil.P(true),
				MigrationsDir: filepath.Join(filepath.Dir(thisFile), "..", "..", "db", "migrations", "sqlite"),
			},
		},
	})
	if err != nil {
		return nil, func() {}, err
	}
	return p, p.Close, nil
}
