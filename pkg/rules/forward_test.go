package rules

import (
	"testing"

	"github.com/consensys/go-wff/pkg/wff"
)

// ============================================================================
// Modus Ponens
// ============================================================================

func TestMp_0(t *testing.T) {
	CheckMatches(t, ModusPonens, "q", "p→q", "p")
}

func TestMp_1(t *testing.T) {
	CheckMatches(t, ModusPonens, "r∨s", "(p∧q)→(r∨s)", "p∧q")
}

func TestMp_2(t *testing.T) {
	// Citations in the wrong order.
	CheckNotMatches(t, ModusPonens, "q", "p", "p→q")
}

func TestMp_3(t *testing.T) {
	// Wrong conclusion.
	CheckNotMatches(t, ModusPonens, "p", "p→q", "p")
}

func TestMp_4(t *testing.T) {
	// Antecedent mismatch.
	CheckNotMatches(t, ModusPonens, "q", "p→q", "r")
}

func TestMp_5(t *testing.T) {
	// First citation not an implication.
	CheckNotMatches(t, ModusPonens, "q", "p∨q", "p")
}

func TestMpGen_0(t *testing.T) {
	CheckGenerates(t, ModusPonens, []string{"p→q", "p"}, "q")
}

func TestMpGen_1(t *testing.T) {
	CheckNotGenerates(t, ModusPonens, []string{"p→q", "q"})
}

// ============================================================================
// Modus Tollens
// ============================================================================

func TestMt_0(t *testing.T) {
	CheckMatches(t, ModusTollens, "¬p", "p→q", "¬q")
}

func TestMt_1(t *testing.T) {
	CheckMatches(t, ModusTollens, "¬(p∧q)", "(p∧q)→r", "¬r")
}

func TestMt_2(t *testing.T) {
	// Citations in the wrong order.
	CheckNotMatches(t, ModusTollens, "¬p", "¬q", "p→q")
}

func TestMt_3(t *testing.T) {
	// Conclusion must be the negated antecedent, not the antecedent.
	CheckNotMatches(t, ModusTollens, "p", "p→q", "¬q")
}

func TestMt_4(t *testing.T) {
	// Second citation must negate the consequent structurally.
	CheckNotMatches(t, ModusTollens, "¬p", "p→¬q", "q")
}

func TestMtGen_0(t *testing.T) {
	CheckGenerates(t, ModusTollens, []string{"p→q", "¬q"}, "¬p")
}

func TestMtGen_1(t *testing.T) {
	CheckGenerates(t, ModusTollens, []string{"r→¬s", "¬¬s"}, "¬r")
}

// ============================================================================
// Hypothetical Syllogism
// ============================================================================

func TestHs_0(t *testing.T) {
	CheckMatches(t, HypotheticalSyllogism, "p→r", "p→q", "q→r")
}

func TestHs_1(t *testing.T) {
	// Citations in the wrong order.
	CheckNotMatches(t, HypotheticalSyllogism, "p→r", "q→r", "p→q")
}

func TestHs_2(t *testing.T) {
	// Middle terms fail to chain.
	CheckNotMatches(t, HypotheticalSyllogism, "p→r", "p→q", "s→r")
}

func TestHs_3(t *testing.T) {
	// Conclusion reversed.
	CheckNotMatches(t, HypotheticalSyllogism, "r→p", "p→q", "q→r")
}

func TestHsGen_0(t *testing.T) {
	CheckGenerates(t, HypotheticalSyllogism, []string{"p→q", "q→r"}, "p→r")
}

func TestHsGen_1(t *testing.T) {
	CheckGenerates(t, HypotheticalSyllogism, []string{"¬p→q", "q→(r∧s)"}, "¬p→(r∧s)")
}

// ============================================================================
// Disjunctive Syllogism
// ============================================================================

func TestDs_0(t *testing.T) {
	CheckMatches(t, DisjunctiveSyllogism, "q", "p∨q", "¬p")
}

func TestDs_1(t *testing.T) {
	CheckMatches(t, DisjunctiveSyllogism, "p", "p∨q", "¬q")
}

func TestDs_2(t *testing.T) {
	// Citations in the wrong order.
	CheckNotMatches(t, DisjunctiveSyllogism, "q", "¬p", "p∨q")
}

func TestDs_3(t *testing.T) {
	// Negation of neither disjunct.
	CheckNotMatches(t, DisjunctiveSyllogism, "q", "p∨q", "¬r")
}

func TestDs_4(t *testing.T) {
	// Negative disjunct requires a double negation to strike out.
	CheckNotMatches(t, DisjunctiveSyllogism, "q", "¬p∨q", "p")
}

func TestDs_5(t *testing.T) {
	CheckMatches(t, DisjunctiveSyllogism, "q", "¬p∨q", "¬¬p")
}

func TestDsGen_0(t *testing.T) {
	CheckGenerates(t, DisjunctiveSyllogism, []string{"p∨q", "¬p"}, "q")
}

func TestDsGen_1(t *testing.T) {
	CheckGenerates(t, DisjunctiveSyllogism, []string{"p∨q", "¬q"}, "p")
}

// ============================================================================
// Conjunction
// ============================================================================

func TestConj_0(t *testing.T) {
	CheckMatches(t, Conjunction, "p∧q", "p", "q")
}

func TestConj_1(t *testing.T) {
	// Either citation order is fine.
	CheckMatches(t, Conjunction, "p∧q", "q", "p")
}

func TestConj_2(t *testing.T) {
	CheckNotMatches(t, Conjunction, "p∧q", "p", "r")
}

func TestConj_3(t *testing.T) {
	CheckNotMatches(t, Conjunction, "p∨q", "p", "q")
}

func TestConjGen_0(t *testing.T) {
	CheckGenerates(t, Conjunction, []string{"p", "q"}, "p∧q")
}

func TestConjGen_1(t *testing.T) {
	// Both orders are offered.
	CheckGenerates(t, Conjunction, []string{"p", "q"}, "q∧p")
}

// ============================================================================
// Simplification
// ============================================================================

func TestSimp_0(t *testing.T) {
	CheckMatches(t, Simplification, "p", "p∧q")
}

func TestSimp_1(t *testing.T) {
	CheckMatches(t, Simplification, "q", "p∧q")
}

func TestSimp_2(t *testing.T) {
	CheckNotMatches(t, Simplification, "r", "p∧q")
}

func TestSimp_3(t *testing.T) {
	// Disjunctions do not simplify.
	CheckNotMatches(t, Simplification, "p", "p∨q")
}

func TestSimpGen_0(t *testing.T) {
	CheckGenerates(t, Simplification, []string{"(p∨q)∧r"}, "p∨q")
}

// ============================================================================
// Addition
// ============================================================================

func TestAdd_0(t *testing.T) {
	CheckMatches(t, Addition, "p∨q", "p")
}

func TestAdd_1(t *testing.T) {
	// The asserted disjunct can sit on either side.
	CheckMatches(t, Addition, "q∨p", "p")
}

func TestAdd_2(t *testing.T) {
	// The drawn disjunct is unconstrained.
	CheckMatches(t, Addition, "p∨(r→¬s)", "p")
}

func TestAdd_3(t *testing.T) {
	CheckNotMatches(t, Addition, "q∨r", "p")
}

func TestAdd_4(t *testing.T) {
	CheckNotMatches(t, Addition, "p∧q", "p")
}

func TestAddGen_0(t *testing.T) {
	CheckGenerates(t, Addition, []string{"p", "q"}, "p∨q")
}

func TestAddGen_1(t *testing.T) {
	CheckGenerates(t, Addition, []string{"p", "q"}, "q∨p")
}

// ============================================================================
// Absorption
// ============================================================================

func TestAbs_0(t *testing.T) {
	CheckMatches(t, Absorption, "p→(p∧q)", "p→q")
}

func TestAbs_1(t *testing.T) {
	CheckNotMatches(t, Absorption, "p→(q∧p)", "p→q")
}

func TestAbs_2(t *testing.T) {
	CheckNotMatches(t, Absorption, "p→(p∧q)", "p∨q")
}

func TestAbsGen_0(t *testing.T) {
	CheckGenerates(t, Absorption, []string{"¬p→q"}, "¬p→(¬p∧q)")
}

// ============================================================================
// Constructive Dilemma
// ============================================================================

func TestCd_0(t *testing.T) {
	CheckMatches(t, ConstructiveDilemma, "q∨s", "(p→q)∧(r→s)", "p∨r")
}

func TestCd_1(t *testing.T) {
	// Citations in the wrong order.
	CheckNotMatches(t, ConstructiveDilemma, "q∨s", "p∨r", "(p→q)∧(r→s)")
}

func TestCd_2(t *testing.T) {
	// Disjunction of consequents, not antecedents.
	CheckNotMatches(t, ConstructiveDilemma, "p∨r", "(p→q)∧(r→s)", "p∨r")
}

func TestCd_3(t *testing.T) {
	// Disjunct order must track the conjunct order.
	CheckNotMatches(t, ConstructiveDilemma, "q∨s", "(p→q)∧(r→s)", "r∨p")
}

func TestCdGen_0(t *testing.T) {
	CheckGenerates(t, ConstructiveDilemma, []string{"(p→q)∧(r→s)", "p∨r"}, "q∨s")
}

func TestCdGen_1(t *testing.T) {
	// Synthesized from two separate implications.
	CheckGenerates(t, ConstructiveDilemma, []string{"p→q", "r→s", "p∨r"}, "q∨s")
}

func TestCdGen_2(t *testing.T) {
	// The synthesized shape carries all three dependencies.
	pool := ParseAll(t, "p→q", "r→s", "p∨r")
	apps := Forward(ConstructiveDilemma).Generate(pool)
	//
	if len(apps) != 1 {
		t.Fatalf("expected one application, got %d", len(apps))
	} else if len(apps[0].Premises) != 3 {
		t.Errorf("expected three premises, got %d", len(apps[0].Premises))
	}
}

// ============================================================================
// Catalog
// ============================================================================

func TestCatalog_0(t *testing.T) {
	for _, rule := range Rules() {
		if Forward(rule).Rule() != rule {
			t.Errorf("engine for %s reports the wrong rule", rule)
		}
	}
}

func TestCatalog_1(t *testing.T) {
	// A pool with nothing applicable.
	pool := ParseAll(t, "p↔q")
	//
	for _, engine := range ForwardRules() {
		if engine.CanApply(pool) {
			t.Errorf("%s should not apply", engine.Rule())
		}
	}
}

func TestCatalog_2(t *testing.T) {
	// Every generated application must itself validate, with the drawn
	// disjunct of Addition (and the synthesized shape of Constructive
	// Dilemma) stripped back to citation form.
	pool := ParseAll(t, "p→q", "p", "¬q", "q→r", "p∨q", "¬p", "p∧q", "(p→q)∧(q→r)")
	//
	for _, app := range Consequences(pool) {
		cited := app.Premises
		//
		switch {
		case app.Rule == Addition:
			cited = cited[:1]
		case app.Rule == ConstructiveDilemma && len(cited) == 3:
			// Conjoin the two implications, as an explicit proof would.
			cited = []wff.Node{wff.And(cited[0], cited[1]), cited[2]}
		}
		//
		if !IsValidInference(app.Rule, cited, app.Conclusion) {
			t.Errorf("%s application %s does not validate", app.Rule, app.Conclusion)
		}
	}
}

// ============================================================================
// Helpers
// ============================================================================

func ParseAll(t *testing.T, inputs ...string) []wff.Node {
	var nodes []wff.Node
	//
	for _, input := range inputs {
		node, err := wff.ParseString(input)
		if err != nil {
			t.Fatal(err)
		}
		//
		nodes = append(nodes, node)
	}
	//
	return nodes
}

func CheckMatches(t *testing.T, rule Rule, conclusion string, cited ...string) {
	checkMatch(t, rule, conclusion, cited, true)
}

func CheckNotMatches(t *testing.T, rule Rule, conclusion string, cited ...string) {
	checkMatch(t, rule, conclusion, cited, false)
}

func checkMatch(t *testing.T, rule Rule, conclusion string, cited []string, expected bool) {
	nodes := ParseAll(t, cited...)
	goal := ParseAll(t, conclusion)[0]
	//
	if IsValidInference(rule, nodes, goal) != expected {
		t.Errorf("%s from %v should be %t for %s", conclusion, cited, expected, rule)
	}
}

// CheckGenerates enumerates the applications of a rule over a pool and checks
// that some application concludes the expected formula.
func CheckGenerates(t *testing.T, rule Rule, pool []string, expected string) {
	nodes := ParseAll(t, pool...)
	goal := ParseAll(t, expected)[0]
	//
	for _, app := range Forward(rule).Generate(nodes) {
		if app.Conclusion.Equals(goal) {
			return
		}
	}
	//
	t.Errorf("%s does not generate %s from %v", rule, expected, pool)
}

func CheckNotGenerates(t *testing.T, rule Rule, pool []string) {
	nodes := ParseAll(t, pool...)
	//
	if apps := Forward(rule).Generate(nodes); len(apps) != 0 {
		t.Errorf("%s should not fire over %v, got %s", rule, pool, apps[0].Conclusion)
	}
}
