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


package telemetry

import (
	"errors"
	"strings"
	"unicode"
)

const Namespace = "sharding"

// BuildMetricName joins the statements into a prometheus friendly snake_case name.
func BuildMetricName(statement ...string) string {
	if len(statement) == 0 {
		panic(errors.New("name for 'BuildMetricName' can not be nil or empty"))
	}

	sb := &strings.Builder{}
	array := make([]string, 0, len(statement))
	for _, s := range statement {
		s = strings.TrimFunc(s, func(r rune) bool {
			return !unicode.IsLetter(r) && !unicode.IsDigit(r)
		})
		if s == "" {
			continue
		}
		sb.Reset()
		prevUpper := true
		prevSep := false
		for _, current := range s {
			switch {
			case unicode.IsUpper(current):
				if !prevUpper && !prevSep {
					sb.WriteByte('_')
				}
				sb.WriteRune(unicode.ToLower(current))
				prevUpper, prevSep = true, false
			case unicode.IsLetter(current) || unicode.IsDigit(current):
				sb.WriteRune(current)
				prevUpper, prevSep = false, false
			default:
				if !prevSep {
					sb.WriteByte('_')
				}
				prevUpper, prevSep = false, true
			}
		}
		array = append(array, sb.String())
	}
	return strings.Join(array, "_")
}
