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


package script

import (
	"fmt"
	"regexp"

	"github.com/d5/tengo/v2"
	"github.com/pingcap/errors"
	"github.com/scylladb/go-set/strset"
)

const (
	resultVar = "_r"
	// tengo registers its own half-open range builtin on every compile, scripts calling range() are
	// pointed at the closed one instead.
	rangeFuncName = "closed_range"
)

var rangeCallPattern = regexp.MustCompile(`(^|[^\w.])range\s*\(`)

type Compiler interface {
	// Var declares a variable, the value is used when the script runs without overriding it.
	Var(name string, value interface{}) error
	Compile() (CompiledScript, error)
}

type scriptCompiler struct {
	script *tengo.Script
	raw    string
	names  []string
}

func (s *scriptCompiler) Compile() (CompiledScript, error) {
	c, err := s.script.Compile()
	if err != nil {
		return nil, errors.Annotatef(err, "compile script '%s' fault", s.raw)
	}
	return &tengoScript{
		raw:       s.raw,
		compiled:  c,
		resultVar: resultVar,
		names:     strset.New(s.names...),
	}, nil
}

func (s *scriptCompiler) Var(name string, value interface{}) error {
	if err := s.script.Add(name, normalizeValue(value)); err != nil {
		return fmt.Errorf("add variable '%s' to compile fault, %s", name, err)
	}
	s.names = append(s.names, name)
	return nil
}

func NewScriptCompiler(script string) (Compiler, error) {
	body := rangeCallPattern.ReplaceAllString(script, "${1}"+rangeFuncName+"(")
	content := fmt.Sprintf("%s:=%s", resultVar, body)
	s := tengo.NewScript([]byte(content))
	if err := s.Add(rangeFuncName, RangeFunction); err != nil {
		return nil, err
	}
	return &scriptCompiler{
		raw:    script,
		script: s,
	}, nil
}

// CompileScript compiles script with the given variables declared.
func CompileScript(script string, variableNames ...string) (CompiledScript, error) {
	compiler, err := NewScriptCompiler(script)
	if err != nil {
		return nil, err
	}
	for _, name := range variableNames {
		if err = compiler.Var(name, nil); err != nil {
			return nil, err
		}
	}
	return compiler.Compile()
}
