package guidance

import "fmt"

// reviewCase identifies which review-phase guidance applies.
type reviewCase int

const (
	reviewAnnotate reviewCase = iota
	reviewContracts
	reviewTests
	reviewVerdict
	reviewApproved
	reviewContinue
)

// caseForReview maps a position to its review case. Unlike planning,
// the numbered steps are checked BEFORE the terminal condition: step 1
// with total 1 yields the step-1 delegation, not the completion
// checklist. The asymmetry with caseForPlanning is deliberate and
// pinned by tests; do not reorder.
func caseForReview(step, total int) reviewCase {
	switch {
	case step == 1:
		return reviewAnnotate
	case step == 2:
		return reviewContracts
	case step == 3:
		return reviewTests
	case step == 4:
		return reviewVerdict
	case Complete(step, total):
		return reviewApproved
	default:
		// Step > 4 while still short of the declared total. A standard
		// review runs with total-steps in 1..4 and never lands here.
		return reviewContinue
	}
}

// Review returns the guidance for a review-phase position. Total over
// all inputs: any pair maps to exactly one case.
func Review(step, total int) Result {
	switch caseForReview(step, total) {
	case reviewAnnotate:
		return reviewAnnotateResult(step)
	case reviewContracts:
		return reviewContractsResult(step)
	case reviewTests:
		return reviewTestsResult(step)
	case reviewVerdict:
		return reviewVerdictResult()
	case reviewApproved:
		return reviewApprovedResult()
	default:
		return reviewContinueResult(step)
	}
}

func reviewAnnotateResult(step int) Result {
	return Result{
		Actions: []string{
			"<review_step_1_delegate_tw>",
			"DELEGATE to @agent-technical-writer:",
			"",
			"  <delegation>",
			"    <agent>@agent-technical-writer</agent>",
			"    <mode>plan-annotation</mode>",
			"    <plan_source>[path to plan file]</plan_source>",
			"    <task>",
			"      1. Read ## Planning Context section FIRST",
			"      2. Prioritize annotation by uncertainty (HIGH/MEDIUM/LOW)",
			"      3. Add WHY comments to code snippets from Decision Log",
			"      4. Enrich plan prose with rationale",
			"      5. Add documentation milestone if missing",
			"      6. FLAG any non-obvious logic lacking rationale",
			"    </task>",
			"  </delegation>",
			"",
			"Wait for @agent-technical-writer to complete.",
			"</review_step_1_delegate_tw>",
		},
		Next: fmt.Sprintf("After the technical writer completes, invoke step %d:\n", step+1) +
			"   sp step --phase review --step-number 2 --total-steps 4 " +
			"--thoughts \"TW annotation complete, [summary of changes]\"",
	}
}

func reviewContractsResult(step int) Result {
	return Result{
		Actions: []string{
			"<review_step_2_delegate_contract_specifier>",
			"DELEGATE to @agent-contract-specifier:",
			"",
			"  <delegation>",
			"    <agent>@agent-contract-specifier</agent>",
			"    <mode>plan-analysis</mode>",
			"    <plan_source>[path to plan file]</plan_source>",
			"    <task>",
			"      Read plan and determine contract coverage scenario:",
			"",
			"      SCENARIO A (contracts exist in plan - defined in planning step 4):",
			"        1. Validate existing contracts are testable (RULE 0)",
			"        2. Check boundary condition coverage (empty, null, max, zero)",
			"        3. Identify gaps (missing preconditions, vague postconditions)",
			"        4. Enhance contracts where needed",
			"        5. Return validation report",
			"",
			"      SCENARIO B (no contracts or incomplete - planning step 4 was skipped):",
			"        1. Analyze plan and identify components needing contracts",
			"        2. Categorize by priority (HIGH/MEDIUM/LOW)",
			"        3. Define contracts for HIGH priority components",
			"        4. Add contracts to plan file (inline in milestones)",
			"        5. Flag MEDIUM priority for consideration",
			"",
			"      Contract Specifier will determine which scenario applies.",
			"    </task>",
			"  </delegation>",
			"",
			"Wait for @agent-contract-specifier to complete.",
			"</review_step_2_delegate_contract_specifier>",
		},
		Next: fmt.Sprintf("After the contract specifier completes, invoke step %d:\n", step+1) +
			"   sp step --phase review --step-number 3 --total-steps 4 " +
			"--thoughts \"Contracts validated/defined, [summary]\"",
	}
}

func reviewTestsResult(step int) Result {
	return Result{
		Actions: []string{
			"<review_step_3_delegate_test_specifier>",
			"DELEGATE to @agent-test-specifier:",
			"",
			"  <delegation>",
			"    <agent>@agent-test-specifier</agent>",
			"    <mode>plan-analysis</mode>",
			"    <plan_source>[path to plan file]</plan_source>",
			"    <task>",
			"      1. Analyze the plan and contracts to determine test strategies",
			"      2. Define unit tests for function-level behavior verification",
			"      3. Define integration tests for component interactions",
			"      4. Define property-based tests for invariants (when applicable)",
			"      5. Identify edge cases and boundary conditions from contracts",
			"      6. Specify coverage strategy (which test types verify which behaviors)",
			"      7. Add test specifications to plan file in each milestone's Test Specification section",
			"    </task>",
			"  </delegation>",
			"",
			"Wait for @agent-test-specifier to complete.",
			"</review_step_3_delegate_test_specifier>",
		},
		Next: fmt.Sprintf("After the test specifier completes, invoke step %d:\n", step+1) +
			"   sp step --phase review --step-number 4 --total-steps 4 " +
			"--thoughts \"Test specifications defined, [summary]\"",
	}
}

func reviewVerdictResult() Result {
	return Result{
		Actions: []string{
			"<review_step_4_delegate_qr>",
			"DELEGATE to @agent-quality-reviewer:",
			"",
			"  <delegation>",
			"    <agent>@agent-quality-reviewer</agent>",
			"    <mode>plan-review</mode>",
			"    <plan_source>[path to plan file]</plan_source>",
			"    <task>",
			"      1. Read ## Planning Context (constraints, known risks)",
			"      2. Write out CONTEXT FILTER before reviewing milestones",
			"      3. Apply RULE 0 (production reliability) with open questions",
			"      4. Apply RULE 1 (project conformance)",
			"      5. Check for contract circumvention (validate precondition -> return default pattern)",
			"      6. Verify contracts are testable and complete",
			"      7. Verify test specifications cover all contract conditions",
			"      8. Check anticipated structural issues",
			"      9. Verify TW annotations pass actionability test",
			"      10. Accept risks documented in Known Risks as acknowledged",
			"      11. Pay extra attention to milestones with uncertainty flags",
			"    </task>",
			"    <expected_output>",
			"      Verdict: PASS | PASS_WITH_CONCERNS | NEEDS_CHANGES",
			"    </expected_output>",
			"  </delegation>",
			"",
			"Wait for @agent-quality-reviewer verdict.",
			"</review_step_4_delegate_qr>",
		},
		Next: "After the quality reviewer returns a verdict:\n" +
			"  - PASS or PASS_WITH_CONCERNS: Invoke step 5 to complete review\n" +
			"  - NEEDS_CHANGES: Address issues in plan, then restart review from step 1:\n" +
			"    sp step --phase review --step-number 1 --total-steps 4 \\\n" +
			"      --thoughts \"Addressed QR feedback: [summary of changes]\"",
	}
}

func reviewApprovedResult() Result {
	return Result{
		Actions: []string{
			"<review_complete_verification>",
			"Confirm before proceeding to execution:",
			"  - TW has annotated code snippets with WHY comments?",
			"  - TW has enriched plan prose with rationale?",
			"  - TW flagged any gaps in Planning Context rationale?",
			"  - Contracts defined for PUBLIC APIs and complex components?",
			"  - Contracts are testable (verified by contract-specifier)?",
			"  - Test specifications defined for all non-trivial milestones?",
			"  - Test specifications cover all contract conditions?",
			"  - QR verdict is PASS or PASS_WITH_CONCERNS?",
			"  - Any concerns from QR are documented or addressed?",
			"</review_complete_verification>",
		},
		Next: "PLAN APPROVED.\n\n" +
			"Ready for implementation.\n" +
			"Pass the plan file path to the executing agent.",
	}
}

func reviewContinueResult(step int) Result {
	return Result{
		Actions: []string{"Continue review process as needed."},
		Next:    fmt.Sprintf("Invoke step %d when ready.", step+1),
	}
}
