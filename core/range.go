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
	"errors"
	"fmt"

	"github.com/endink/go-sharding-route/core/comparison"
)

type BoundType int

const (
	BoundClosed BoundType = iota
	BoundOpen
)

func (b BoundType) String() string {
	if b == BoundOpen {
		return "open"
	}
	return "closed"
}

// Range is an interval over comparable values. An absent bound means the range is unbounded on that side.
type Range interface {
	fmt.Stringer
	LowerBound() interface{}
	UpperBound() interface{}
	HasLower() bool
	HasUpper() bool
	LowerType() BoundType
	UpperType() BoundType
	IsEmpty() bool
	Contains(value interface{}) (bool, error)
	HasIntersection(v Range) (bool, error)
	// Intersect returns nil when the ranges are disjoint.
	Intersect(v Range) (Range, error)
}

var (
	ErrRangeBoundTypeNotSame     = errors.New("different types of boundary values cannot create range")
	ErrRangeInvalidBound         = errors.New("the lower bound of the range cannot be greater than the upper bound")
	ErrRangeBoundTypeUnsupported = errors.New("boundary value types for the range are not supported")
)

type defaultRange struct {
	lower     interface{}
	upper     interface{}
	hasL      bool
	hasU      bool
	lowerType BoundType
	upperType BoundType
}

// NewRange creates a closed range, nil bound means unbounded.
func NewRange(min interface{}, max interface{}) (Range, error) {
	return NewRangeWithBounds(min, BoundClosed, max, BoundClosed)
}

func OpenRange(lower, upper interface{}) (Range, error) {
	return NewRangeWithBounds(lower, BoundOpen, upper, BoundOpen)
}

func ClosedRange(lower, upper interface{}) (Range, error) {
	return NewRangeWithBounds(lower, BoundClosed, upper, BoundClosed)
}

func OpenClosedRange(lower, upper interface{}) (Range, error) {
	return NewRangeWithBounds(lower, BoundOpen, upper, BoundClosed)
}

func ClosedOpenRange(lower, upper interface{}) (Range, error) {
	return NewRangeWithBounds(lower, BoundClosed, upper, BoundOpen)
}

func AtLeast(lower interface{}) (Range, error) {
	return NewRangeWithBounds(lower, BoundClosed, nil, BoundOpen)
}

func GreaterThan(lower interface{}) (Range, error) {
	return NewRangeWithBounds(lower, BoundOpen, nil, BoundOpen)
}

func AtMost(upper interface{}) (Range, error) {
	return NewRangeWithBounds(nil, BoundOpen, upper, BoundClosed)
}

func LessThan(upper interface{}) (Range, error) {
	return NewRangeWithBounds(nil, BoundOpen, upper, BoundOpen)
}

func AllRange() Range {
	return &defaultRange{lowerType: BoundOpen, upperType: BoundOpen}
}

func NewRangeWithBounds(lower interface{}, lowerType BoundType, upper interface{}, upperType BoundType) (Range, error) {
	r := &defaultRange{lowerType: BoundOpen, upperType: BoundOpen}

	if lower != nil {
		if !comparison.IsCompareSupported(lower) {
			return nil, ErrRangeBoundTypeUnsupported
		}
		r.lower, r.hasL, r.lowerType = lower, true, lowerType
	}

	if upper != nil {
		if !comparison.IsCompareSupported(upper) {
			return nil, ErrRangeBoundTypeUnsupported
		}
		r.upper, r.hasU, r.upperType = upper, true, upperType
	}

	if r.hasL && r.hasU {
		c, err := comparison.Compare(r.lower, r.upper)
		if err != nil {
			return nil, ErrRangeBoundTypeNotSame
		}
		if c > 0 || (c == 0 && lowerType == BoundOpen && upperType == BoundOpen) {
			return nil, ErrRangeInvalidBound
		}
	}
	return r, nil
}

func (d *defaultRange) LowerBound() interface{} {
	return d.lower
}

func (d *defaultRange) UpperBound() interface{} {
	return d.upper
}

func (d *defaultRange) HasLower() bool {
	return d.hasL
}

func (d *defaultRange) HasUpper() bool {
	return d.hasU
}

func (d *defaultRange) LowerType() BoundType {
	return d.lowerType
}

func (d *defaultRange) UpperType() BoundType {
	return d.upperType
}

func (d *defaultRange) IsEmpty() bool {
	if !d.hasL || !d.hasU {
		return false
	}
	c, err := comparison.Compare(d.lower, d.upper)
	return err == nil && c == 0 && (d.lowerType == BoundOpen || d.upperType == BoundOpen)
}

func (d *defaultRange) Contains(value interface{}) (bool, error) {
	if d.hasL {
		c, err := comparison.Compare(d.lower, value)
		if err != nil {
			return false, err
		}
		if c > 0 || (c == 0 && d.lowerType == BoundOpen) {
			return false, nil
		}
	}

	if d.hasU {
		c, err := comparison.Compare(d.upper, value)
		if err != nil {
			return false, err
		}
		if c < 0 || (c == 0 && d.upperType == BoundOpen) {
			return false, nil
		}
	}
	return true, nil
}

type bound struct {
	value   interface{}
	present bool
	tp      BoundType
}

func tighterLower(a, b bound) (bound, error) {
	if !a.present {
		return b, nil
	}
	if !b.present {
		return a, nil
	}
	c, err := comparison.Compare(a.value, b.value)
	if err != nil {
		return bound{}, err
	}
	switch {
	case c > 0:
		return a, nil
	case c < 0:
		return b, nil
	}
	if b.tp == BoundOpen {
		return b, nil
	}
	return a, nil
}

func tighterUpper(a, b bound) (bound, error) {
	if !a.present {
		return b, nil
	}
	if !b.present {
		return a, nil
	}
	c, err := comparison.Compare(a.value, b.value)
	if err != nil {
		return bound{}, err
	}
	switch {
	case c < 0:
		return a, nil
	case c > 0:
		return b, nil
	}
	if b.tp == BoundOpen {
		return b, nil
	}
	return a, nil
}

func (d *defaultRange) overlap(v Range) (*defaultRange, error) {
	if v == nil {
		return nil, errors.New("the range used to intersect cannot be nil")
	}
	lower, err := tighterLower(
		bound{d.lower, d.hasL, d.lowerType},
		bound{v.LowerBound(), v.HasLower(), v.LowerType()})
	if err != nil {
		return nil, err
	}
	upper, err := tighterUpper(
		bound{d.upper, d.hasU, d.upperType},
		bound{v.UpperBound(), v.HasUpper(), v.UpperType()})
	if err != nil {
		return nil, err
	}

	if lower.present && upper.present {
		c, err := comparison.Compare(lower.value, upper.value)
		if err != nil {
			return nil, err
		}
		if c > 0 || (c == 0 && (lower.tp == BoundOpen || upper.tp == BoundOpen)) {
			return nil, nil
		}
	}

	r := &defaultRange{lowerType: BoundOpen, upperType: BoundOpen}
	if lower.present {
		r.lower, r.hasL, r.lowerType = lower.value, true, lower.tp
	}
	if upper.present {
		r.upper, r.hasU, r.upperType = upper.value, true, upper.tp
	}
	return r, nil
}

func (d *defaultRange) HasIntersection(v Range) (bool, error) {
	r, err := d.overlap(v)
	if err != nil {
		return false, err
	}
	return r != nil, nil
}

func (d *defaultRange) Intersect(v Range) (Range, error) {
	r, err := d.overlap(v)
	if err != nil || r == nil {
		return nil, err
	}
	return r, nil
}

func (d *defaultRange) String() string {
	left, right := "(", ")"
	min, max := "-∞", "+∞"
	if d.hasL {
		min = fmt.Sprint(d.lower)
		if d.lowerType == BoundClosed {
			left = "["
		}
	}
	if d.hasU {
		max = fmt.Sprint(d.upper)
		if d.upperType == BoundClosed {
			right = "]"
		}
	}
	return fmt.Sprintf("%s%s..%s%s", left, min, max, right)
}
