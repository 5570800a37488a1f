// seehuhn.de/go/pocket - pocket milling toolpaths
// Copyright (C) 2026  Jochen Voss <voss@seehuhn.de>
//
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// This program is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with this program.  If not, see <https://www.gnu.org/licenses/>.

package pocket

import (
	"errors"
	"fmt"
	"math"
)

// ErrInvalidOperation is returned when an Operation fails validation.
var ErrInvalidOperation = errors.New("invalid pocket operation")

// Strategy selects the clearing algorithm used for a pocket.
// It is one of Raster, ContourParallel or Adaptive.
type Strategy interface {
	isStrategy()
}

// Raster fills the pocket with parallel scan lines.
type Raster struct {
	// Angle is the direction of the scan lines in degrees,
	// counter-clockwise from the X axis.
	Angle float64

	// Bidirectional lets alternate strokes run in opposite directions.
	// Otherwise every stroke runs in the scan direction and the tool
	// returns with a rapid move.
	Bidirectional bool
}

// ContourParallel clears the pocket with offset rings, from the wall
// inwards.
type ContourParallel struct{}

// Adaptive clears the pocket with offset rings, from the centre outwards.
type Adaptive struct{}

func (Raster) isStrategy()          {}
func (ContourParallel) isStrategy() {}
func (Adaptive) isStrategy()        {}

// Operation holds the machining parameters for one pocket.
type Operation struct {
	// StartDepth is the Z coordinate of the stock surface.
	StartDepth float64

	// Depth is the total depth of the pocket below StartDepth.
	// Must be non-negative.
	Depth float64

	// StepDown is the maximum depth cut per Z pass. Zero or negative
	// values cut the full depth in a single pass.
	StepDown float64

	// SafeHeight is the Z coordinate used for rapid traverses.
	// Must be above StartDepth.
	SafeHeight float64

	// ToolDiameter is the diameter of the flat end mill. Must be positive.
	ToolDiameter float64

	// Stepover is the lateral distance between rings or scan lines.
	// Must be positive.
	Stepover float64

	FeedRate       float64 // cutting feed in units per minute
	PlungeFeedRate float64 // feed for ramps and plunges; zero means FeedRate
	RapidFeedRate  float64 // feed recorded on rapid moves
	SpindleSpeed   float64 // RPM

	// Climb selects climb milling for ring based strategies
	// (counter-clockwise rings). Otherwise rings run clockwise.
	Climb bool

	// Strategy selects the clearing algorithm. Nil means ContourParallel.
	Strategy Strategy

	// RampAngle is the helix angle in degrees used to enter the material.
	// Zero plunges straight down.
	RampAngle float64

	// FillRatio is the fraction of each raster stroke that is cut,
	// centred on the stroke. Must be in (0, 1].
	FillRatio float64
}

// DefaultOperation returns an Operation with typical values for a 6mm end
// mill.
func DefaultOperation() Operation {
	return Operation{
		StartDepth:     0,
		Depth:          5,
		StepDown:       2,
		SafeHeight:     5,
		ToolDiameter:   6,
		Stepover:       3,
		FeedRate:       600,
		PlungeFeedRate: 200,
		RapidFeedRate:  5000,
		SpindleSpeed:   12000,
		Climb:          true,
		Strategy:       ContourParallel{},
		RampAngle:      3,
		FillRatio:      1,
	}
}

// Validate checks the invariants of the operation.
func (op *Operation) Validate() error {
	switch {
	case !(op.ToolDiameter > 0):
		return fmt.Errorf("%w: tool diameter must be positive, got %g", ErrInvalidOperation, op.ToolDiameter)
	case !(op.Stepover > 0):
		return fmt.Errorf("%w: stepover must be positive, got %g", ErrInvalidOperation, op.Stepover)
	case op.Depth < 0 || math.IsNaN(op.Depth):
		return fmt.Errorf("%w: depth must not be negative, got %g", ErrInvalidOperation, op.Depth)
	case !(op.SafeHeight > op.StartDepth):
		return fmt.Errorf("%w: safe height %g must be above start depth %g", ErrInvalidOperation, op.SafeHeight, op.StartDepth)
	case !(op.FillRatio > 0 && op.FillRatio <= 1):
		return fmt.Errorf("%w: fill ratio must be in (0, 1], got %g", ErrInvalidOperation, op.FillRatio)
	case op.RampAngle < 0 || op.RampAngle >= 90:
		return fmt.Errorf("%w: ramp angle must be in [0, 90), got %g", ErrInvalidOperation, op.RampAngle)
	}
	return nil
}

func (op *Operation) toolRadius() float64 {
	return op.ToolDiameter / 2
}

func (op *Operation) strategy() Strategy {
	if op.Strategy == nil {
		return ContourParallel{}
	}
	return op.Strategy
}

func (op *Operation) plungeFeed() float64 {
	if op.PlungeFeedRate > 0 {
		return op.PlungeFeedRate
	}
	return op.FeedRate
}

// zPass is one cutting level.
type zPass struct {
	top float64 // Z where the material of this pass begins
	z   float64 // cutting depth
}

// passes returns the Z levels to cut, from top to bottom.
// The number of passes is ceil(Depth/StepDown); the last pass is clamped to
// the full depth.
func (op *Operation) passes() []zPass {
	if op.Depth <= 0 {
		return nil
	}
	if op.StepDown <= 0 || op.StepDown >= op.Depth {
		return []zPass{{top: op.StartDepth, z: op.StartDepth - op.Depth}}
	}

	n := int(math.Ceil(op.Depth/op.StepDown - depthTolerance))
	res := make([]zPass, 0, n)
	top := op.StartDepth
	for k := 1; k <= n; k++ {
		z := op.StartDepth - min(op.StepDown*float64(k), op.Depth)
		res = append(res, zPass{top: top, z: z})
		top = z
	}
	return res
}
