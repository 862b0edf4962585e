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
	"strings"
)

type inlineSegmentGroup struct {
	segments []*inlineSegment
}

// inlineSegment is a literal prefix optionally followed by a script.
type inlineSegment struct {
	rawScript string
	prefix    string
	script    CompiledScript
}

type splitContext struct {
	prefix    *strings.Builder
	rawScript *strings.Builder
	variables []string
	segments  []*inlineSegment
}

func (seg *inlineSegment) isBlank() bool {
	return strings.TrimSpace(seg.prefix) == "" && strings.TrimSpace(seg.rawScript) == ""
}

func splitSegments(exp string, variables ...string) ([]*inlineSegmentGroup, error) {
	isScript := false
	scriptStart := false
	depth := 0
	expLen := len(exp)
	includeSplitter := false

	groups := make([]*inlineSegmentGroup, 0)

	syntaxError := func(message string, index int) error {
		if index >= 0 {
			return fmt.Errorf("inline expression syntax error\n%s\nexpression: %s\nchar index: %d", message, exp, index)
		}
		return fmt.Errorf("inline expression syntax error\n%s\nexpression: %s", message, exp)
	}

	context := &splitContext{
		prefix:    &strings.Builder{},
		rawScript: &strings.Builder{},
		variables: variables,
	}

	prefix := context.prefix
	rawScript := context.rawScript

	for i := 0; i < expLen; i++ {
		char := exp[i]
		switch char {
		case '$':
			if isScript {
				rawScript.WriteByte(char)
			} else if i < (expLen-1) && exp[i+1] == '{' {
				isScript = true
				scriptStart = true
			} else {
				return nil, syntaxError("'{' symbol is missing after the symbol '$'", i)
			}
		case '{':
			if isScript {
				if scriptStart {
					scriptStart = false
				} else {
					depth++
					rawScript.WriteByte(char)
				}
			} else {
				prefix.WriteByte(char)
			}
		case '.':
			if isScript {
				rawScript.WriteByte(char)
				continue
			}
			if i == 0 || i == (expLen-1) {
				return nil, syntaxError("should not appear symbol '.' at beginning and end of the inline expression", i)
			}
			if includeSplitter {
				return nil, syntaxError("should not appear symbol '.'", i)
			}
			includeSplitter = true
			prefix.WriteByte(char)
		case '}':
			if !isScript {
				prefix.WriteByte(char)
			} else if depth > 0 {
				depth--
				rawScript.WriteByte(char)
			} else {
				isScript = false
				if err := context.flushSegment(); err != nil {
					return nil, syntaxError(err.Error(), i)
				}
			}
		case ',':
			if isScript {
				rawScript.WriteByte(char)
				continue
			}
			g, err := context.flushGroup()
			if err != nil {
				return nil, syntaxError(err.Error(), i)
			}
			if g != nil {
				groups = append(groups, g)
			}
			includeSplitter = false
		default:
			if isScript {
				rawScript.WriteByte(char)
			} else {
				prefix.WriteByte(char)
			}
		}
	}

	if isScript {
		return nil, syntaxError("symbol '}' used to end the script are missing", -1)
	}

	g, err := context.flushGroup()
	if err != nil {
		return nil, syntaxError(err.Error(), expLen)
	}
	if g != nil {
		groups = append(groups, g)
	}
	return groups, nil
}

func (context *splitContext) flushGroup() (*inlineSegmentGroup, error) {
	if err := context.flushSegment(); err != nil {
		return nil, err
	}
	if len(context.segments) == 0 {
		return nil, nil
	}
	g := &inlineSegmentGroup{
		segments: context.segments,
	}
	context.segments = nil
	return g, nil
}

func (context *splitContext) flushSegment() error {
	seg := &inlineSegment{
		prefix:    context.prefix.String(),
		rawScript: strings.TrimSpace(context.rawScript.String()),
	}
	if len(context.segments) == 0 {
		seg.prefix = strings.TrimLeft(seg.prefix, " \t\r\n")
	}
	if seg.rawScript == "" {
		seg.prefix = strings.TrimRight(seg.prefix, " \t\r\n")
	}
	if !seg.isBlank() {
		if seg.rawScript != "" {
			s, err := CompileScript(seg.rawScript, context.variables...)
			if err != nil {
				return err
			}
			seg.script = s
		}
		context.segments = append(context.segments, seg)
	}

	context.prefix.Reset()
	context.rawScript.Reset()
	return nil
}
