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

package log

import (
	"context"
	"math"
	"os"
	"strings"
	"sync/atomic"
	"time"

	"github.com/alexmedkex/forkly-sub001/pkg/confutil"
	"github.com/alexmedkex/forkly-sub001/pkg/tfconf"
	"github.com/sirupsen/logrus"
	prefixed "github.com/x-cray/logrus-prefixed-formatter"
	lumberjack "gopkg.in/natefinch/lumberjack.v2"
)

var (
	rootLogger = logrus.NewEntry(logrus.StandardLogger())

	// L accesses the current logger from the context
	L = loggerFromContext

	initAtLeastOnce atomic.Bool
)

type ctxLogKey struct{}

func InitConfig(conf *tfconf.LogConfig) {
	initAtLeastOnce.Store(true) // must store before SetLevel
	defs := tfconf.LogDefaults

	SetLevel(confutil.StringNotEmpty(conf.Level, *defs.Level))

	switch confutil.StringNotEmpty(conf.Output, *defs.Output) {
	case "file":
		filename := confutil.StringNotEmpty(conf.File.Filename, *defs.File.Filename)
		rootLogger.Infof("Logs diverted to %s", filename)
		maxSizeBytes := confutil.ByteSize(conf.File.MaxSize, 0, *defs.File.MaxSize)
		maxAge := confutil.DurationMin(conf.File.MaxAge, 0, *defs.File.MaxAge)
		logrus.SetOutput(&lumberjack.Logger{
			Filename:   filename,
			MaxSize:    int(math.Ceil(float64(maxSizeBytes) / 1024 / 1024)),
			MaxBackups: confutil.IntMin(conf.File.MaxBackups, 0, *defs.File.MaxBackups),
			MaxAge:     int(math.Ceil(float64(maxAge) / float64(time.Hour) / 24)),
			Compress:   confutil.Bool(conf.File.Compress, *defs.File.Compress),
		})
	case "stdout":
		logrus.SetOutput(os.Stdout)
	default:
		logrus.SetOutput(os.Stderr)
	}

	setFormatting(&formatting{
		format:             confutil.StringNotEmpty(conf.Format, *defs.Format),
		disableColor:       confutil.Bool(conf.DisableColor, *defs.DisableColor),
		forceColor:         confutil.Bool(conf.ForceColor, *defs.ForceColor),
		timestampFormat:    confutil.StringNotEmpty(conf.TimeFormat, *defs.TimeFormat),
		utc:                confutil.Bool(conf.UTC, *defs.UTC),
		jsonTimestampField: confutil.StringNotEmpty(conf.JSON.TimestampField, *defs.JSON.TimestampField),
		jsonLevelField:     confutil.StringNotEmpty(conf.JSON.LevelField, *defs.JSON.LevelField),
		jsonMessageField:   confutil.StringNotEmpty(conf.JSON.MessageField, *defs.JSON.MessageField),
		jsonFuncField:      confutil.StringNotEmpty(conf.JSON.FuncField, *defs.JSON.FuncField),
		jsonFileField:      confutil.StringNotEmpty(conf.JSON.FileField, *defs.JSON.FileField),
	})
}

func IsDebugEnabled() bool {
	return logrus.IsLevelEnabled(logrus.DebugLevel)
}

func EnsureInit() {
	// Not an atomic load on every log line, so only called at strategic points
	if !initAtLeastOnce.Load() {
		InitConfig(&tfconf.LogConfig{})
	}
}

// WithLogger adds the specified logger to the context
func WithLogger(ctx context.Context, logger *logrus.Entry) context.Context {
	EnsureInit()
	return context.WithValue(ctx, ctxLogKey{}, logger)
}

// WithLogField adds the specified field to the logger in the context
func WithLogField(ctx context.Context, key, value string) context.Context {
	if len(value) > 61 {
		value = value[0:61] + "..."
	}
	return WithLogger(ctx, loggerFromContext(ctx).WithField(key, value))
}

func loggerFromContext(ctx context.Context) *logrus.Entry {
	logger := ctx.Value(ctxLogKey{})
	if logger == nil {
		return rootLogger
	}
	return logger.(*logrus.Entry)
}

func SetLevel(level string) {
	var l logrus.Level
	switch strings.ToLower(level) {
	case "error":
		l = logrus.ErrorLevel
	case "warn", "warning":
		l = logrus.WarnLevel
	case "debug":
		l = logrus.DebugLevel
	case "trace":
		l = logrus.TraceLevel
	default:
		l = logrus.InfoLevel
	}
	logrus.SetLevel(l)
}

type formatting struct {
	format             string
	disableColor       bool
	forceColor         bool
	timestampFormat    string
	utc                bool
	jsonTimestampField string
	jsonLevelField     string
	jsonMessageField   string
	jsonFuncField      string
	jsonFileField      string
}

type utcFormat struct {
	f logrus.Formatter
}

func (utc *utcFormat) Format(e *logrus.Entry) ([]byte, error) {
	e.Time = e.Time.UTC()
	return utc.f.Format(e)
}

func setFormatting(f *formatting) {
	var formatter logrus.Formatter
	switch f.format {
	case "json":
		formatter = &logrus.JSONFormatter{
			TimestampFormat: f.timestampFormat,
			FieldMap: logrus.FieldMap{
				logrus.FieldKeyTime:  f.jsonTimestampField,
				logrus.FieldKeyLevel: f.jsonLevelField,
				logrus.FieldKeyMsg:   f.jsonMessageField,
				logrus.FieldKeyFunc:  f.jsonFuncField,
				logrus.FieldKeyFile:  f.jsonFileField,
			},
		}
	case "detailed":
		formatter = &logrus.TextFormatter{
			DisableColors:   f.disableColor,
			ForceColors:     f.forceColor,
			TimestampFormat: f.timestampFormat,
			FullTimestamp:   true,
		}
		logrus.SetReportCaller(true)
	default:
		formatter = &prefixed.TextFormatter{
			DisableColors:   f.disableColor,
			ForceColors:     f.forceColor,
			TimestampFormat: f.timestampFormat,
			ForceFormatting: true,
			FullTimestamp:   true,
		}
	}
	if f.utc {
		formatter = &utcFormat{f: formatter}
	}
	logrus.SetFormatter(formatter)
}
