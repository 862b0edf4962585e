/*
 * Copyright 2021. Go-Sharding Author All Rights Reserved.
 *
 *  Licensed under the Apache License, Version 2.0 (the "License");
 *  you may not use this file except in compliance with the License.
 *  You may obtain a copy of the License at
 *
 *      http://www.apache.org/licenses/LICENSE-2.0
 *
 *  Unless required by applicable law or agreed to in writing, software
 *  distributed under the License is distributed on an "AS IS" BASIS,
 *  WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
 *  See the License for the specific language governing permissions and
 *  limitations under the License.
 *
 *  File author: Anders Xiao
 */


package logging

import (
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"os"
	"sync"
)

// StandardLogger is the subset of *zap.SugaredLogger used across the module.
type StandardLogger interface {
	Debug(args ...interface{})
	Info(args ...interface{})
	Warn(args ...interface{})
	Error(args ...interface{})
	Panic(args ...interface{})
	Fatal(args ...interface{})

	Debugf(template string, args ...interface{})
	Infof(template string, args ...interface{})
	Warnf(template string, args ...interface{})
	Errorf(template string, args ...interface{})
	Panicf(template string, args ...interface{})
	Fatalf(template string, args ...interface{})
}

var loggerMutex sync.RWMutex // guards access to global logger state

// loggers is the set of loggers in the system
var loggers = make(map[string]*zap.SugaredLogger)

var levels = make(map[string]zap.AtomicLevel)
var defaultLevel = zapcore.InfoLevel
var output zapcore.WriteSyncer = zapcore.AddSync(os.Stdout)

var logCore = newCore(ColorizedOutput, output)

var DefaultLogger = GetLogger("sharding-route")

func GetLogger(name string) *zap.SugaredLogger {
	loggerMutex.Lock()
	defer loggerMutex.Unlock()
	log, ok := loggers[name]
	if !ok {
		levels[name] = zap.NewAtomicLevelAt(defaultLevel)

		log = zap.New(logCore, zap.AddCaller()).
			WithOptions(zap.IncreaseLevel(levels[name])).
			Named(name).
			Sugar()

		loggers[name] = log
	}

	return log
}

// SetLevel changes the level of the named logger, it returns false if the logger was never created.
func SetLevel(name string, level zapcore.Level) bool {
	loggerMutex.RLock()
	defer loggerMutex.RUnlock()
	l, ok := levels[name]
	if ok {
		l.SetLevel(level)
	}
	return ok
}

// SetAllLevels changes the level of every existing logger and of loggers created later.
func SetAllLevels(level zapcore.Level) {
	loggerMutex.Lock()
	defer loggerMutex.Unlock()
	defaultLevel = level
	for _, l := range levels {
		l.SetLevel(level)
	}
}

// GetLevel returns the level of the named logger, or the default level for unknown names.
func GetLevel(name string) zapcore.Level {
	loggerMutex.RLock()
	defer loggerMutex.RUnlock()
	if l, ok := levels[name]; ok {
		return l.Level()
	}
	return defaultLevel
}

// SetFormat replaces the shared core. Existing loggers keep writing through the previous core.
func SetFormat(format LogFormat) {
	loggerMutex.Lock()
	defer loggerMutex.Unlock()
	logCore = newCore(format, output)
}
