package gateway

import (
	"fmt"
	"strings"
)

const (
	questionsSystemPrompt = "You are an expert HR interviewer. Generate professional interview questions with expected answer points."
	evaluateSystemPrompt  = "You are an expert interview coach. Provide constructive, encouraging feedback."

	adviceSystemPrompt = `You are a career counselor specializing in helping students and job seekers in Sri Lanka and developing countries.
Provide practical, encouraging, and actionable career advice.
Focus on remote work opportunities, skill development, and local job market insights.
Be supportive and motivational while being realistic about challenges.
Keep responses concise but helpful.`

	// AdviceFallback is returned when the model replies with no text.
	AdviceFallback = "I'm sorry, I couldn't generate a response right now."

	cvMaxTokens     = 2000
	adviceMaxTokens = 500
)

func cvPrompt(data string) string {
	return fmt.Sprintf(`Create a professional HTML CV using the following information.
Use modern, clean styling with Tailwind CSS classes.
Include proper semantic HTML structure.
Make it print-friendly and professional.

Data: %s

Return only the HTML content without any markdown formatting.`, data)
}

func questionsPrompt(jobTitle string, count int) string {
	return fmt.Sprintf(`Generate %d realistic interview questions for a %s position.
Focus on questions commonly asked in entry-level to mid-level positions.
Include a mix of technical, behavioral, and situational questions.

Return the response as a JSON object with this structure:
{
  "questions": [
    {
      "question": "Tell me about yourself",
      "expectedPoints": ["Background summary", "Relevant experience", "Career goals"]
    }
  ]
}`, count, jobTitle)
}

func evaluatePrompt(question, answer, jobTitle string) string {
	return fmt.Sprintf(`Evaluate this interview answer for a %s position.

Question: %s
Answer: %s

Provide a score from 1-10 and constructive feedback.
Include specific suggestions for improvement.

Return response as JSON:
{
  "score": 7,
  "feedback": "Good start but could be more specific...",
  "suggestions": ["Add specific examples", "Quantify achievements"]
}`, jobTitle, question, answer)
}

// stripFences removes a surrounding markdown code fence such as ```html.
func stripFences(s string) string {
	s = strings.TrimSpace(s)
	if !strings.HasPrefix(s, "```") {
		return s
	}
	if i := strings.Index(s, "\n"); i >= 0 {
		s = s[i+1:]
	} else {
		s = strings.TrimPrefix(s, "```")
	}
	s = strings.TrimSuffix(strings.TrimSpace(s), "```")
	return strings.TrimSpace(s)
}
