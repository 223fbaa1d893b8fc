package sensors

import (
	"fmt"
	"os"

	"github.com/gr-butler/weathermeter/env"
	"gopkg.in/yaml.v3"
)

// Calibration maps each compass point to the ADC reading the vane's resistor
// ladder produces there. The values follow the resistor positions, not the
// angle, so they are neither ascending nor descending.
type Calibration struct {
	CodeBand  uint32
	Reference [DirectionCount]uint32
}

// measured for one installation, 12 bit ADC with a 10k pull up
var defaultReference = [DirectionCount]uint32{
	3541, // N
	2476, // NNE
	2660, // NE
	1123, // ENE
	1171, // E
	1029, // ESE
	1606, // SE
	1334, // SSE
	2042, // S
	1869, // SSW
	3159, // SW
	3073, // WSW
	3881, // W
	3635, // WNW
	3762, // NW
	3341, // NNW
}

func DefaultCalibration() Calibration {
	return Calibration{
		CodeBand:  env.WindVaneCodeBand,
		Reference: defaultReference,
	}
}

type calibrationFile struct {
	CodeBand *uint32 `yaml:"codeBand"`
	Points   []struct {
		Direction string `yaml:"direction"`
		Reference uint32 `yaml:"reference"`
	} `yaml:"points"`
}

// LoadCalibration reads a calibration table from a YAML file. All 16 points
// must be present in compass order starting at N. codeBand is optional.
func LoadCalibration(path string) (Calibration, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return Calibration{}, err
	}
	return ParseCalibration(raw)
}

func ParseCalibration(raw []byte) (Calibration, error) {
	var f calibrationFile
	if err := yaml.Unmarshal(raw, &f); err != nil {
		return Calibration{}, fmt.Errorf("calibration: %w", err)
	}
	if len(f.Points) != DirectionCount {
		return Calibration{}, fmt.Errorf("calibration: need %d points, got %d", DirectionCount, len(f.Points))
	}

	c := Calibration{CodeBand: env.WindVaneCodeBand}
	if f.CodeBand != nil {
		c.CodeBand = *f.CodeBand
	}
	for i, p := range f.Points {
		d, err := ParseDirection(p.Direction)
		if err != nil {
			return Calibration{}, fmt.Errorf("calibration point %d: %w", i, err)
		}
		if int(d) != i {
			return Calibration{}, fmt.Errorf("calibration point %d: expected %v, got %v", i, Direction(i), d)
		}
		c.Reference[i] = p.Reference
	}
	return c, nil
}

// match returns the first direction, in compass order, whose band contains v.
func (c *Calibration) match(v uint32) Direction {
	for i, ref := range c.Reference {
		lo := uint32(0)
		if ref > c.CodeBand {
			lo = ref - c.CodeBand
		}
		hi := ref + c.CodeBand
		if hi < ref {
			hi = ^uint32(0)
		}
		if v >= lo && v <= hi {
			return Direction(i)
		}
	}
	return Unknown
}
