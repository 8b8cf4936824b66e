// Copyright Consensys Software Inc.
//
// Licensed under the Apache License, Version 2.0 (the "License"); you may not use this file except in compliance with
// the License. You may obtain a copy of the License at
//
// http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software distributed under the License is distributed on
// an "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied. See the License for the
// specific language governing permissions and limitations under the License.
//
// SPDX-License-Identifier: Apache-2.0

// Package problem provides proof problems (premises plus a conclusion to
// derive) and named collections of them, stored as YAML problem sets.
package problem

import (
	"os"
	"strings"

	"github.com/consensys/go-wff/pkg/wff"
	"github.com/goccy/go-yaml"
	"github.com/pkg/errors"
)

// Problem pairs a set of granted premises with a conclusion to derive from
// them.
type Problem struct {
	// Premises granted outright.
	Premises []wff.Formula
	// Conclusion to derive.
	Conclusion wff.Formula
	// Difficulty is the objective complexity score of this problem: the
	// number of derivation steps hidden between premises and conclusion.
	Difficulty uint
}

// String renders this problem as a sequent.
func (p Problem) String() string {
	var parts []string
	//
	for _, premise := range p.Premises {
		parts = append(parts, premise.String())
	}
	//
	return strings.Join(parts, ", ") + " ⊢ " + p.Conclusion.String()
}

// Set is a named collection of problems, as stored in a problem file.
type Set struct {
	// Name of this collection.
	Name string
	// Problems making up this collection.
	Problems []Problem
}

// Problem returns the kth problem of this set, counting from 1.
func (p *Set) Problem(k uint) (Problem, error) {
	if k == 0 || k > uint(len(p.Problems)) {
		return Problem{}, errors.Errorf("problem %d does not exist (the set holds %d)", k, len(p.Problems))
	}
	//
	return p.Problems[k-1], nil
}

// ============================================================================
// Serialization
// ============================================================================

// Formulas travel as canonical strings, hence the indirection.
type yamlProblem struct {
	Premises   []string `yaml:"premises"`
	Conclusion string   `yaml:"conclusion"`
	Difficulty uint     `yaml:"difficulty,omitempty"`
}

type yamlSet struct {
	Name     string        `yaml:"name,omitempty"`
	Problems []yamlProblem `yaml:"problems"`
}

// Marshal serializes this problem set, writing each formula in its canonical
// form.
func (p *Set) Marshal() ([]byte, error) {
	dto := yamlSet{Name: p.Name}
	//
	for i, prob := range p.Problems {
		var dp yamlProblem
		//
		for j, premise := range prob.Premises {
			text, err := canonical(premise)
			if err != nil {
				return nil, errors.Wrapf(err, "problem %d, premise %d", i+1, j+1)
			}
			//
			dp.Premises = append(dp.Premises, text)
		}
		//
		text, err := canonical(prob.Conclusion)
		if err != nil {
			return nil, errors.Wrapf(err, "problem %d, conclusion", i+1)
		}
		//
		dp.Conclusion = text
		dp.Difficulty = prob.Difficulty
		dto.Problems = append(dto.Problems, dp)
	}
	//
	return yaml.Marshal(dto)
}

// UnmarshalSet deserializes a problem set, parsing each formula back into
// canonical form.
func UnmarshalSet(bytes []byte) (Set, error) {
	var (
		dto yamlSet
		set Set
	)
	//
	if err := yaml.Unmarshal(bytes, &dto); err != nil {
		return Set{}, errors.Wrap(err, "malformed problem set")
	}
	//
	set.Name = dto.Name
	//
	for i, dp := range dto.Problems {
		prob := Problem{Difficulty: dp.Difficulty}
		//
		for j, text := range dp.Premises {
			node, err := wff.ParseString(text)
			if err != nil {
				return Set{}, errors.Wrapf(err, "problem %d, premise %d", i+1, j+1)
			}
			//
			prob.Premises = append(prob.Premises, node.Formula())
		}
		//
		node, err := wff.ParseString(dp.Conclusion)
		if err != nil {
			return Set{}, errors.Wrapf(err, "problem %d, conclusion", i+1)
		}
		//
		prob.Conclusion = node.Formula()
		set.Problems = append(set.Problems, prob)
	}
	//
	return set, nil
}

// ReadSetFile reads a problem set from a YAML file.
func ReadSetFile(filename string) (Set, error) {
	bytes, err := os.ReadFile(filename)
	if err != nil {
		return Set{}, err
	}
	//
	set, err := UnmarshalSet(bytes)
	if err != nil {
		return Set{}, errors.Wrap(err, filename)
	}
	//
	return set, nil
}

// WriteFile writes this problem set to a YAML file.
func (p *Set) WriteFile(filename string) error {
	bytes, err := p.Marshal()
	if err != nil {
		return err
	}
	//
	return os.WriteFile(filename, bytes, 0644)
}

// Canonical text of a formula, via its parsed tree.
func canonical(formula wff.Formula) (string, error) {
	node, err := wff.Parse(formula)
	if err != nil {
		return "", err
	}
	//
	return node.Formula().String(), nil
}
