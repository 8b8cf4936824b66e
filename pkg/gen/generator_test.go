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
package gen

import (
	"math/rand/v2"
	"testing"

	"github.com/consensys/go-wff/pkg/problem"
	"github.com/consensys/go-wff/pkg/wff"
)

// Number of problems generated per difficulty in the sweep tests.
const nSamples = 40

func TestGenerate_0(t *testing.T) {
	prob := MustGenerate(t, 2, 0)
	//
	if len(prob.Premises) == 0 {
		t.Fatal("generated problem has no premises")
	}
	//
	if prob.Difficulty == 0 {
		t.Error("generated problem hides no steps")
	}
	//
	conclusion := MustParse(t, prob.Conclusion.String())
	//
	for _, premise := range prob.Premises {
		if MustParse(t, premise.String()).Equals(conclusion) {
			t.Error("conclusion amongst the premises")
		}
	}
}

func TestGenerate_1(t *testing.T) {
	// Same seed, same problem.
	first := MustGenerate(t, 3, 42)
	second := MustGenerate(t, 3, 42)
	//
	if first.String() != second.String() {
		t.Errorf("generation is not reproducible: %s versus %s", first, second)
	}
}

func TestGenerate_2(t *testing.T) {
	// Every generated premise pool passes the same scan the generator runs,
	// on a fresh allocator.
	for _, difficulty := range []uint{2, 4, 6} {
		for seed := uint64(0); seed < nSamples; seed++ {
			prob := MustGenerate(t, difficulty, seed)
			//
			if err := CheckPremises(MustTrees(t, prob.Premises)); err != nil {
				t.Errorf("difficulty %d, seed %d: %v", difficulty, seed, err)
			}
		}
	}
}

func TestGenerate_3(t *testing.T) {
	// Every generated problem is solvable by the forward search.
	for _, difficulty := range []uint{2, 4, 6} {
		for seed := uint64(0); seed < nSamples; seed++ {
			prob := MustGenerate(t, difficulty, seed)
			//
			CheckSolvable(t, *prob, 256)
		}
	}
}

func TestGenerate_4(t *testing.T) {
	// The recorded difficulty is an objective score, so harder requests
	// yield harder problems on average.
	easy := averageDifficulty(t, 2)
	hard := averageDifficulty(t, 6)
	//
	if easy > hard {
		t.Errorf("difficulty 2 averaged %.2f hidden steps, difficulty 6 averaged %.2f", easy, hard)
	}
}

// ============================================================================
// Helpers
// ============================================================================

func MustGenerate(t *testing.T, difficulty uint, seed uint64) *problem.Problem {
	t.Helper()
	//
	generator := NewGenerator(rand.New(rand.NewPCG(seed, 0)))
	//
	prob, err := generator.Generate(difficulty)
	if err != nil {
		t.Fatalf("difficulty %d, seed %d: %v", difficulty, seed, err)
	}
	//
	return prob
}

func MustTrees(t *testing.T, formulas []wff.Formula) []wff.Node {
	trees := make([]wff.Node, len(formulas))
	//
	for i, formula := range formulas {
		trees[i] = MustParse(t, formula.String())
	}
	//
	return trees
}

func averageDifficulty(t *testing.T, difficulty uint) float64 {
	var total uint
	//
	for seed := uint64(0); seed < nSamples; seed++ {
		total += MustGenerate(t, difficulty, seed).Difficulty
	}
	//
	return float64(total) / nSamples
}
