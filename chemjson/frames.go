/*
 * frames.go, part of molcheck.
 *
 *
 * Copyright 2026 Raul Mera <rmera{at}chemDOThelsinkiDOTfi>
 *
 * This program is free software; you can redistribute it and/or modify
 * it under the terms of the GNU Lesser General Public License as
 * published by the Free Software Foundation; either version 2.1 of the
 * License, or (at your option) any later version.
 *
 * This program is distributed in the hope that it will be useful,
 * but WITHOUT ANY WARRANTY; without even the implied warranty of
 * MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
 * GNU General Public License for more details.
 *
 * You should have received a copy of the GNU Lesser General
 * Public License along with this program.  If not, see
 * <http://www.gnu.org/licenses/>.
 *
 *
 */

package chemjson

import (
	"encoding/json"
	"io"
)

//Sample is the trajectory sample an external simulation attaches to its
//results. Each series has one value per frame, but any of them, except
//Time, can be shorter or missing.
type Sample struct {
	Time            []float64 `json:"time"`
	PotentialEnergy []float64 `json:"potential_energy"`
	KineticEnergy   []float64 `json:"kinetic_energy"`
	Temperature     []float64 `json:"temperature"`
}

//Frame is one point of a trajectory, ready for plotting or animation.
type Frame struct {
	Time            float64 `json:"time"`
	PotentialEnergy float64 `json:"potentialEnergy"`
	KineticEnergy   float64 `json:"kineticEnergy"`
	Temperature     float64 `json:"temperature"`
}

func at(s []float64, i int) float64 {
	if i < len(s) {
		return s[i]
	}
	return 0
}

//Frames returns one frame per element of S.Time. Missing values are 0.
func (S *Sample) Frames() []Frame {
	frames := make([]Frame, 0, len(S.Time))
	for i, t := range S.Time {
		frames = append(frames, Frame{
			Time:            t,
			PotentialEnergy: at(S.PotentialEnergy, i),
			KineticEnergy:   at(S.KineticEnergy, i),
			Temperature:     at(S.Temperature, i),
		})
	}
	return frames
}

//DecodeSample reads a JSON trajectory sample from in. The sample can be
//bare, or under the "trajectory_sample" key of a results object.
func DecodeSample(in io.Reader) (*Sample, error) {
	var raw map[string]json.RawMessage
	if err := json.NewDecoder(in).Decode(&raw); err != nil {
		return nil, NewError("chemjson.DecodeSample", err)
	}
	body, err := json.Marshal(raw)
	if err != nil {
		return nil, NewError("chemjson.DecodeSample", err)
	}
	if inner, ok := raw["trajectory_sample"]; ok {
		body = inner
	}
	S := new(Sample)
	if err := json.Unmarshal(body, S); err != nil {
		return nil, NewError("chemjson.DecodeSample", err)
	}
	return S, nil
}

//FramesFromSample decodes a sample from in and returns its frames.
func FramesFromSample(in io.Reader) ([]Frame, error) {
	S, err := DecodeSample(in)
	if err != nil {
		return nil, err
	}
	return S.Frames(), nil
}
