package guidance

import "fmt"

// planningCase identifies which planning-phase guidance applies.
type planningCase int

const (
	planningFinal planningCase = iota
	planningScope
	planningDecide
	planningRefine
	planningContracts
	planningRecheck
)

// caseForPlanning maps a position to its planning case. The terminal
// check runs BEFORE the numbered steps: with total 1, step 1 yields the
// final verification, never the step-1 checklist. Reordering these
// checks changes observable behavior.
func caseForPlanning(step, total int) planningCase {
	switch {
	case Complete(step, total):
		return planningFinal
	case step == 1:
		return planningScope
	case step == 2:
		return planningDecide
	case step == 3:
		return planningRefine
	case step == 4:
		return planningContracts
	default:
		return planningRecheck
	}
}

// Planning returns the guidance for a planning-phase position. Total
// over all inputs: any pair maps to exactly one case.
func Planning(step, total int) Result {
	switch caseForPlanning(step, total) {
	case planningScope:
		return planningScopeResult(step)
	case planningDecide:
		return planningDecideResult(step)
	case planningRefine:
		return planningRefineResult()
	case planningContracts:
		return planningContractsResult(step)
	case planningRecheck:
		return planningRecheckResult(step, total)
	default:
		return planningFinalResult()
	}
}

func planningScopeResult(step int) Result {
	return Result{
		Actions: []string{
			"You are an expert architect. Proceed with confidence.",
			"",
			"PRECONDITION: Confirm plan file path before proceeding.",
			"",
			"<step_1_checklist>",
			"Complete ALL items before invoking step 2:",
			"",
			"CONTEXT (understand before proposing):",
			"  - [ ] What code/systems does this touch?",
			"  - [ ] What patterns does the codebase follow?",
			"  - [ ] What prior decisions constrain this work?",
			"",
			"SCOPE (define boundaries):",
			"  - [ ] What exactly must be accomplished?",
			"  - [ ] What is OUT of scope?",
			"",
			"APPROACHES (consider alternatives):",
			"  - [ ] 2-3 options with Advantage/Disadvantage for each",
			"",
			"CONSTRAINTS (list by category):",
			"  - [ ] Technical: language, APIs, existing patterns",
			"  - [ ] Organizational: timeline, expertise, approvals",
			"  - [ ] Dependencies: external services, data formats",
			"",
			"SUCCESS (observable outcomes):",
			"  - [ ] Defined testable acceptance criteria",
			"</step_1_checklist>",
		},
		Next: fmt.Sprintf("Invoke step %d with your context analysis and approach options.", step+1),
	}
}

func planningDecideResult(step int) Result {
	return Result{
		Actions: []string{
			"<step_2_evaluate_first>",
			"BEFORE deciding, evaluate each approach from step 1:",
			"  | Approach | P(success) | Failure mode | Backtrack cost |",
			"",
			"STOP CHECK: If ALL approaches show LOW probability or HIGH",
			"backtrack cost, STOP. Request clarification from user.",
			"</step_2_evaluate_first>",
			"",
			"<step_2_decide>",
			"Select approach. Record in Decision Log with MULTI-STEP chain:",
			"",
			"  INSUFFICIENT: 'Polling | Webhooks are unreliable'",
			"  SUFFICIENT:   'Polling | 30% webhook failure in testing",
			"                 -> would need fallback anyway -> simpler primary'",
			"",
			"Include BOTH architectural AND micro-decisions (timeouts, etc).",
			"</step_2_decide>",
			"",
			"<step_2_rejected>",
			"Document rejected alternatives with CONCRETE reasons.",
			"The technical writer uses this for 'why not X' code comments.",
			"</step_2_rejected>",
			"",
			"<step_2_architecture>",
			"Capture in ASCII diagrams:",
			"  - Component relationships",
			"  - Data flow",
			"These go in Invisible Knowledge for README.md.",
			"</step_2_architecture>",
			"",
			"<step_2_milestones>",
			"Break into deployable increments:",
			"  - Each milestone: independently testable",
			"  - Scope: 1-3 files per milestone",
			"  - Map dependencies (circular = design problem)",
			"</step_2_milestones>",
		},
		Next: fmt.Sprintf("Invoke step %d with your chosen approach (include state evaluation summary), architecture, and milestone structure.", step+1),
	}
}

func planningRefineResult() Result {
	return Result{
		Actions: []string{
			"<step_3_risks>",
			"Document risks NOW. The quality reviewer excludes documented",
			"risks from findings. Undocumented risks WILL be flagged.",
			"",
			"For each risk:",
			"  | Risk | Mitigation or 'Accepted: [reason]' |",
			"</step_3_risks>",
			"",
			"<step_3_uncertainty_flags>",
			"For EACH milestone, check these conditions -> add flag:",
			"",
			"  | Condition                          | Flag                    |",
			"  |------------------------------------|-------------------------|",
			"  | Multiple valid implementations     | needs TW rationale      |",
			"  | Depends on external system         | needs error review      |",
			"  | First use of pattern in codebase   | needs conformance check |",
			"",
			"Add to milestone: **Flags**: [list]",
			"</step_3_uncertainty_flags>",
			"",
			"<step_3_refine_milestones>",
			"Verify EACH milestone has:",
			"",
			"FILES — exact paths:",
			"  CORRECT: src/auth/handler.go",
			"  WRONG:   'auth files'",
			"",
			"REQUIREMENTS — specific behaviors:",
			"  CORRECT: 'retry 3x with exponential backoff, max 30s'",
			"  WRONG:   'handle errors'",
			"",
			"ACCEPTANCE CRITERIA — testable pass/fail:",
			"  CORRECT: 'Returns 429 after 3 failed attempts within 60s'",
			"  WRONG:   'Handles errors correctly'",
			"",
			"CODE CHANGES — diff format for non-trivial logic.",
			"</step_3_refine_milestones>",
			"",
			"<step_3_validate>",
			"Cross-check: Does the plan address ALL original requirements?",
			"",
			"CONTRACT CONSIDERATION:",
			"  Do any components need formal contracts?",
			"  - PUBLIC APIs or external interfaces?",
			"  - Complex validation logic with multiple approaches?",
			"  - State machines or stateful components?",
			"  - Error-prone operations (I/O, concurrency, parsing)?",
			"  - Security-sensitive code (auth, crypto, validation)?",
			"",
			"If YES to any: consider adding contract specification step before final verification.",
			"</step_3_validate>",
		},
		Next: "Options:\n" +
			"  - If contracts needed: Invoke step 4 (adjust total-steps) with contract needs\n" +
			"  - If no contracts: Invoke final verification step (current total-steps)",
	}
}

func planningContractsResult(step int) Result {
	return Result{
		Actions: []string{
			"<contract_specification_step>",
			"Define formal contracts for complex components identified in step 3.",
			"",
			"COMPONENTS NEEDING CONTRACTS:",
			"  Review each milestone for:",
			"  - PUBLIC APIs (user-facing functions)",
			"  - Complex validation (multiple valid approaches)",
			"  - State machines (state transitions)",
			"  - Error-prone logic (I/O, concurrency, parsing)",
			"  - Security-sensitive (authentication, authorization, cryptography)",
			"",
			"FOR EACH COMPONENT:",
			"  Define inline in milestone specification:",
			"  ",
			"  **Contracts**:",
			"  ",
			"  ### Contract: function_name",
			"  **Preconditions**: requires caller to provide [specific conditions]",
			"  **Postconditions**: ensures function returns/guarantees [specific outcomes]",
			"  **Boundary Conditions**: behavior for empty, null, zero, max [concrete values]",
			"  **Error Behaviors**: raises/returns [specific error types and conditions]",
			"",
			"TESTABILITY CHECK:",
			"  For each condition: What test would verify this?",
			"  If you can't describe a concrete test -> rewrite the condition.",
			"",
			"See @agent-contract-specifier documentation for patterns and examples.",
			"</contract_specification_step>",
		},
		Next: fmt.Sprintf("Invoke step %d with contracts defined, ready for final verification.", step+1),
	}
}

func planningRecheckResult(step, total int) Result {
	remaining := total - step
	return Result{
		Actions: []string{
			"<backtrack_check>",
			"BEFORE proceeding, verify no dead ends:",
			"  - Has new information invalidated a prior decision?",
			"  - Is a milestone now impossible given discovered constraints?",
			"  - Are you adding complexity to work around a fundamental issue?",
			"",
			"If YES to any: invoke earlier step with --thoughts explaining change.",
			"</backtrack_check>",
			"",
			"<gap_analysis>",
			"Review current plan state. What's missing?",
			"  - Any milestone without exact file paths?",
			"  - Any acceptance criteria not testable pass/fail?",
			"  - Any non-trivial logic without diff-format code?",
			"  - Any milestone missing uncertainty flags where applicable?",
			"</gap_analysis>",
			"",
			"<planning_context_check>",
			"  - Decision Log: Every major choice has multi-step reasoning?",
			"  - Rejected Alternatives: At least one per major decision?",
			"  - Known Risks: All failure modes identified with mitigations?",
			"</planning_context_check>",
			"",
			"<developer_walkthrough>",
			"Walk through the plan as if you were the implementer:",
			"  - Can you implement each milestone from the spec alone?",
			"  - Are requirements specific enough to avoid interpretation?",
			"",
			"If gaps remain, address them. If complete, reduce total-steps.",
			"</developer_walkthrough>",
		},
		Next: fmt.Sprintf("Invoke step %d. %d step(s) remaining until completion. (Or invoke earlier step if backtracking.)", step+1, remaining),
	}
}

func planningFinalResult() Result {
	return Result{
		Actions: []string{
			"FINAL VERIFICATION — complete each section before writing.",
			"",
			"<planning_context_verification>",
			"The technical writer and quality reviewer consume this section",
			"VERBATIM. Quality here = quality of annotations and risk",
			"detection downstream.",
			"",
			"Decision Log:",
			"  - What major architectural choice did you make?",
			"  - What is the multi-step reasoning chain for that choice?",
			"  - What micro-decisions (timeouts, data structures) need",
			"    rationale for the technical writer to document?",
			"",
			"Rejected Alternatives:",
			"  - What approach did you NOT take?",
			"  - What concrete reason ruled it out?",
			"",
			"Known Risks:",
			"  - What failure modes exist?",
			"  - What mitigation or acceptance rationale exists for each?",
			"</planning_context_verification>",
			"",
			"<invisible_knowledge_verification>",
			"This section sources README.md content. Skip if trivial.",
			"",
			"  - What is the component relationship diagram?",
			"  - What is the data flow through the system?",
			"  - Why is the module organization structured this way?",
			"  - What invariants must be maintained?",
			"  - What tradeoffs were made (and their costs/benefits)?",
			"</invisible_knowledge_verification>",
			"",
			"<milestone_verification>",
			"For EACH milestone, verify:",
			"  - File paths: exact (src/auth/handler.go) not vague?",
			"  - Requirements: specific behaviors, not 'handle X'?",
			"  - Acceptance criteria: testable pass/fail assertions?",
			"  - Code changes: diff format for non-trivial logic?",
			"  - Uncertainty flags: added where applicable?",
			"  - Contracts: defined for PUBLIC APIs and complex logic?",
			"</milestone_verification>",
			"",
			"<documentation_milestone_verification>",
			"  - Does a Documentation milestone exist?",
			"  - Does CLAUDE.md use TABULAR INDEX format (not prose)?",
			"  - Is README.md included only if Invisible Knowledge has",
			"    content?",
			"</documentation_milestone_verification>",
			"",
			"<comment_hygiene_verification>",
			"Comments in code snippets will be transcribed VERBATIM to code.",
			"Write in TIMELESS PRESENT -- describe what the code IS, not what",
			"you are changing.",
			"",
			"CONTAMINATED: '// Added mutex to fix race condition'",
			"CLEAN: '// Mutex serializes cache access from concurrent requests'",
			"",
			"CONTAMINATED: '// Replaces per-tag logging with summary'",
			"CLEAN: '// Single summary line; per-tag avoids 1500+ lines'",
			"",
			"CONTAMINATED: '// After the retry loop' (location directive)",
			"CLEAN: (delete -- diff context encodes location)",
			"",
			"The technical writer will review, but starting clean reduces rework.",
			"</comment_hygiene_verification>",
		},
		Next: "PLANNING PHASE COMPLETE.\n\n" +
			"1. Write the plan to a file (sp new scaffolds the format)\n\n" +
			"============================================\n" +
			">>> ACTION REQUIRED: INVOKE REVIEW PHASE <<<\n" +
			"============================================\n\n" +
			"SKIPPING REVIEW MEANS:\n" +
			"  - Developer has NO prepared comments to transcribe\n" +
			"  - Code ships without WHY documentation\n" +
			"  - Reviewer findings surface during execution, not before\n\n" +
			"2. Run this command to start review:\n\n" +
			"   sp step --phase review --step-number 1 --total-steps 4 \\\n" +
			"     --thoughts \"Plan written to [path]\"\n\n" +
			"Review phase:\n" +
			"  Step 1: @agent-technical-writer annotates code snippets\n" +
			"  Step 2: @agent-contract-specifier validates/defines contracts\n" +
			"  Step 3: @agent-test-specifier defines test specifications\n" +
			"  Step 4: @agent-quality-reviewer validates the plan\n" +
			"  Then: Ready for execution",
	}
}
