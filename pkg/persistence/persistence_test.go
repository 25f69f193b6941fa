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
	"fmt"
	"testing"

	"github.com/alexmedkex/forkly-sub001/pkg/confutil"
	"github.com/alexmedkex/forkly-sub001/pkg/tfconf"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func TestPersistenceTypes(t *testing.T) {
	ctx := context.Background()

	_, err := NewPersistence(ctx, &tfconf.DBConfig{})
	assert.Regexp(t, "TF010501", err)

	_, err = NewPersistence(ctx, &tfconf.DBConfig{Type: "sqlite"})
	assert.Regexp(t, "TF010501", err)

	_, err = NewPersistence(ctx, &tfconf.DBConfig{Type: "postgres"})
	assert.Regexp(t, "TF010501", err)

	_, err = NewPersistence(ctx, &tfconf.DBConfig{Type: "wrong"})
	assert.Regexp(t, "TF010500.*wrong", err)
}

func TestSQLiteMissingMigrationDir(t *testing.T) {
	_, err := NewPersistence(context.Background(), &tfconf.DBConfig{
		Type: "sqlite",
		SQLite: tfconf.SQLiteConfig{
			SQLDBConfig: tfconf.SQLDBConfig{
				DSN:         ":memory:",
				AutoMigrate: confutil.P(true),
			},
		},
	})
	assert.Regexp(t, "TF010504", err)
}

func TestUnitTestPersistenceMigratesAndTransacts(t *testing.T) {
	ctx := context.Background()
	p, done, err := NewUnitTestPersistence(ctx)
	require.NoError(t, err)
	defer done()

	var count int64
	err = p.DB().Table("instruments").Count(&count).Error
	require.NoError(t, err)
	assert.Zero(t, count)

	err = p.Transaction(ctx, func(ctx context.Context, tx *gorm.DB) error {
		if err := tx.Exec(`INSERT INTO listener_checkpoints (listener, block_number) VALUES (?, ?)`, "test", 10).Error; err != nil {
			return err
		}
		return fmt.Errorf("rollback")
	})
	assert.Regexp(t, "rollback", err)

	err = p.DB().Table("listener_checkpoints").Count(&count).Error
	require.NoError(t, err)
	assert.Zero(t, count)
}
