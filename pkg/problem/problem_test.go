package problem

import (
	"path/filepath"
	"testing"

	"github.com/consensys/go-wff/pkg/wff"
	"github.com/stretchr/testify/assert"
)

func TestSet_0(t *testing.T) {
	set := NewTestSet(t)
	//
	bytes, err := set.Marshal()
	assert.NoError(t, err)
	//
	back, err := UnmarshalSet(bytes)
	assert.NoError(t, err)
	//
	CheckSetsMatch(t, set, back)
}

func TestSet_1(t *testing.T) {
	// Round trip through an actual file.
	var (
		set      = NewTestSet(t)
		filename = filepath.Join(t.TempDir(), "problems.yaml")
	)
	//
	assert.NoError(t, set.WriteFile(filename))
	//
	back, err := ReadSetFile(filename)
	assert.NoError(t, err)
	//
	CheckSetsMatch(t, set, back)
}

func TestSet_2(t *testing.T) {
	// Formulas load from a handwritten file, in either spelling.
	input := `name: drills
problems:
  - premises: ["p->q", "p"]
    conclusion: "q"
    difficulty: 1
  - premises: ["¬(p∧q)"]
    conclusion: "¬p∨¬q"
`
	set, err := UnmarshalSet([]byte(input))
	assert.NoError(t, err)
	assert.Equal(t, "drills", set.Name)
	assert.Equal(t, 2, len(set.Problems))
	assert.Equal(t, uint(1), set.Problems[0].Difficulty)
	assert.Equal(t, uint(0), set.Problems[1].Difficulty)
	//
	CheckFormulaIs(t, "(p→q)", set.Problems[0].Premises[0])
	CheckFormulaIs(t, "(¬p∨¬q)", set.Problems[1].Conclusion)
}

func TestSet_3(t *testing.T) {
	set := NewTestSet(t)
	//
	prob, err := set.Problem(1)
	assert.NoError(t, err)
	assert.Equal(t, "(p→q), p ⊢ q", prob.String())
}

func TestSetErr_0(t *testing.T) {
	// Not YAML at all.
	_, err := UnmarshalSet([]byte("::"))
	assert.Error(t, err)
}

func TestSetErr_1(t *testing.T) {
	// Ill-formed premise.
	input := `problems:
  - premises: ["p∧"]
    conclusion: "q"
`
	_, err := UnmarshalSet([]byte(input))
	assert.Error(t, err)
}

func TestSetErr_2(t *testing.T) {
	// Ill-formed conclusion.
	input := `problems:
  - premises: ["p"]
    conclusion: ")q("
`
	_, err := UnmarshalSet([]byte(input))
	assert.Error(t, err)
}

func TestSetErr_3(t *testing.T) {
	set := NewTestSet(t)
	//
	_, err := set.Problem(0)
	assert.Error(t, err)
	//
	_, err = set.Problem(uint(len(set.Problems)) + 1)
	assert.Error(t, err)
}

// ============================================================================
// Helpers
// ============================================================================

func NewTestSet(t *testing.T) Set {
	return Set{
		Name: "drills",
		Problems: []Problem{
			{
				Premises:   ParseFormulas(t, "p→q", "p"),
				Conclusion: ParseFormulas(t, "q")[0],
				Difficulty: 1,
			},
			{
				Premises:   ParseFormulas(t, "(p→q)∧(r→s)", "p∨r"),
				Conclusion: ParseFormulas(t, "q∨s")[0],
				Difficulty: 2,
			},
		},
	}
}

func ParseFormulas(t *testing.T, inputs ...string) []wff.Formula {
	var formulas []wff.Formula
	//
	for _, input := range inputs {
		node, err := wff.ParseString(input)
		if err != nil {
			t.Fatal(err)
		}
		//
		formulas = append(formulas, node.Formula())
	}
	//
	return formulas
}

func CheckSetsMatch(t *testing.T, expected Set, actual Set) {
	assert.Equal(t, expected.Name, actual.Name)
	assert.Equal(t, len(expected.Problems), len(actual.Problems))
	//
	for i, prob := range expected.Problems {
		back := actual.Problems[i]
		//
		assert.Equal(t, prob.Difficulty, back.Difficulty)
		assert.Equal(t, len(prob.Premises), len(back.Premises))
		//
		for j, premise := range prob.Premises {
			if !premise.Equals(back.Premises[j]) {
				t.Errorf("premise %d of problem %d changed: %s", j+1, i+1, back.Premises[j].String())
			}
		}
		//
		if !prob.Conclusion.Equals(back.Conclusion) {
			t.Errorf("conclusion of problem %d changed: %s", i+1, back.Conclusion.String())
		}
	}
}

func CheckFormulaIs(t *testing.T, expected string, actual wff.Formula) {
	if actual.String() != expected {
		t.Errorf("expected %s, got %s", expected, actual.String())
	}
}
