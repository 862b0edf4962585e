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


package core

import (
	"fmt"
	"strconv"
	"strings"
	"unicode"
)

const DefaultPaddingChar = '0'

// DataNodeInfo describes how physical names of one logical table are composed: a stem followed by a
// zero padded index.
type DataNodeInfo struct {
	Prefix          string
	SuffixMinLength int
	PaddingChar     rune
}

func NewDataNodeInfo(prefix string, suffixMinLength int) *DataNodeInfo {
	return &DataNodeInfo{
		Prefix:          prefix,
		SuffixMinLength: suffixMinLength,
		PaddingChar:     DefaultPaddingChar,
	}
}

// Format returns the physical name of the shard with the given index.
func (d *DataNodeInfo) Format(index int64) string {
	s := strconv.FormatInt(index, 10)
	negative := index < 0
	if negative {
		s = s[1:]
	}
	if pad := d.SuffixMinLength - len(s); pad > 0 {
		c := d.PaddingChar
		if c == 0 {
			c = DefaultPaddingChar
		}
		s = strings.Repeat(string(c), pad) + s
	}
	if negative {
		s = "-" + s
	}
	return d.Prefix + s
}

func (d *DataNodeInfo) String() string {
	return fmt.Sprintf("%s{%d}", d.Prefix, d.SuffixMinLength)
}

// ParseDataNodeInfo derives a DataNodeInfo from a physical name, logicName may be empty.
//
// "t_order_01" with logic name "t_order" gives prefix "t_order_" and suffix length 2.
func ParseDataNodeInfo(logicName string, actualName string) *DataNodeInfo {
	if logicName != "" && len(actualName) > len(logicName) && strings.EqualFold(actualName[:len(logicName)], logicName) {
		rest := actualName[len(logicName):]
		digits := trailingDigits(rest)
		return NewDataNodeInfo(actualName[:len(logicName)]+rest[:len(rest)-digits], digits)
	}
	digits := trailingDigits(actualName)
	return NewDataNodeInfo(actualName[:len(actualName)-digits], digits)
}

func trailingDigits(s string) int {
	n := 0
	for i := len(s) - 1; i >= 0; i-- {
		if !unicode.IsDigit(rune(s[i])) {
			break
		}
		n++
	}
	return n
}
