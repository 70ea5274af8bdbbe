package module

import (
	"errors"
	"math"
	"testing"

	"github.com/san-kum/artgen/internal/art"
)

type knob struct {
	speed float64
	ps    Params
}

func newKnob() *knob {
	k := &knob{speed: 1}
	k.ps = Params{
		"speed": {Min: 0.1, Max: 2, Get: func() float64 { return k.speed }, Set: func(v float64) { k.speed = v }},
	}
	return k
}

func (k *knob) Name() string                          { return "Knob" }
func (k *knob) Params() map[string]float64            { return k.ps.Values() }
func (k *knob) SetParam(name string, v float64) error { return k.ps.Apply(k.Name(), name, v) }

type plain struct{}

func (plain) Name() string { return "Plain" }

func TestParamsApplyClamps(t *testing.T) {
	k := newKnob()
	if err := k.SetParam("speed", 50); err != nil {
		t.Fatal(err)
	}
	if k.speed != 2 {
		t.Errorf("speed = %v, want 2", k.speed)
	}
	if got := k.Params()["speed"]; got != 2 {
		t.Errorf("Params()[speed] = %v", got)
	}
}

func TestParamsErrors(t *testing.T) {
	k := newKnob()
	tests := []struct {
		name  string
		param string
		value float64
		want  error
	}{
		{"unknown", "zoom", 1, art.ErrUnknownParam},
		{"nan", "speed", math.NaN(), art.ErrInvalidValue},
		{"inf", "speed", math.Inf(1), art.ErrInvalidValue},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := k.SetParam(tt.param, tt.value)
			if !errors.Is(err, tt.want) {
				t.Errorf("err = %v, want %v", err, tt.want)
			}
		})
	}
	if k.speed != 1 {
		t.Errorf("failed sets changed speed to %v", k.speed)
	}
}

func TestApplyAll(t *testing.T) {
	k := newKnob()
	if err := ApplyAll(k, map[string]float64{"speed": 0.5}); err != nil {
		t.Fatal(err)
	}
	if k.speed != 0.5 {
		t.Errorf("speed = %v", k.speed)
	}
	if err := ApplyAll(plain{}, nil); err != nil {
		t.Errorf("empty map on plain module: %v", err)
	}
	if err := ApplyAll(plain{}, map[string]float64{"x": 1}); !errors.Is(err, art.ErrUnknownParam) {
		t.Errorf("plain module err = %v", err)
	}
	if names := k.ps.Names(); len(names) != 1 || names[0] != "speed" {
		t.Errorf("names = %v", names)
	}
}
