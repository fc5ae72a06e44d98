package interview

import (
	"fmt"
	"strings"
)

// The three prompt templates are fixed strings with substitution only.
// None of them validates its inputs; responsibility for well-formed
// output sits entirely with the response parser downstream.

const questionsSystemPrompt = `You are the TalentScout Hiring Assistant, a technical screening assistant.

Rules:
- For each technology in the candidate's tech stack, generate exactly 3 short interview questions in ENGLISH.
- Respond strictly as a single JSON object mapping each technology name to an array of exactly 3 question strings.
- No explanations, no extra text, no markdown, only valid JSON.`

const chatSystemPrompt = `You are the TalentScout Hiring Assistant.
Always answer clearly in English.
Do NOT repeat or rephrase the user's question, only provide the best possible answer.`

const skillSystemPrompt = `You are the TalentScout Hiring Assistant, evaluating a candidate's interview answers.

Rules:
- Estimate the candidate's skill level for each technology in the declared tech stack.
- Use only these labels: Beginner, Intermediate, Expert.
- Respond strictly as a single JSON object mapping each technology name to one label.
- No explanations, no extra text, only valid JSON.`

// BuildQuestionsPrompt renders the question-generation user message for
// the given free-text tech stack.
func BuildQuestionsPrompt(techStack string) string {
	var b strings.Builder

	fmt.Fprintf(&b, "Candidate tech stack: %s.\n\n", techStack)
	b.WriteString("For each technology, generate exactly 3 short interview questions in ENGLISH.\n")
	b.WriteString("Respond strictly in JSON format like this:\n")
	b.WriteString("{\n")
	b.WriteString(`  "Python": ["Question1", "Question2", "Question3"],` + "\n")
	b.WriteString(`  "Django": ["Question1", "Question2", "Question3"]` + "\n")
	b.WriteString("}\n")
	b.WriteString("No explanations, no extra text, only valid JSON.")

	return b.String()
}

// BuildChatPrompt renders the chat-answer user message. The fixed
// persona lives in the system prompt; the template only frames the
// user's text as a question awaiting an answer.
func BuildChatPrompt(userMessage string) string {
	return fmt.Sprintf("Question: %s\nAnswer:", userMessage)
}

// BuildSkillPrompt renders the skill-estimation user message from the
// declared tech stack and the formatted interview answers.
func BuildSkillPrompt(techStack, answers string) string {
	var b strings.Builder

	fmt.Fprintf(&b, "Candidate tech stack: %s\n\n", techStack)
	b.WriteString("Candidate interview answers:\n")
	b.WriteString(answers)
	b.WriteString("\n\n")
	b.WriteString("Based on the answers, estimate the candidate's skill level for each technology in this stack.\n")
	b.WriteString("Use only these labels: Beginner, Intermediate, Expert.\n")
	b.WriteString("Respond strictly in JSON format like this:\n")
	b.WriteString("{\n")
	b.WriteString(`  "Python": "Intermediate",` + "\n")
	b.WriteString(`  "Django": "Beginner"` + "\n")
	b.WriteString("}")

	return b.String()
}
