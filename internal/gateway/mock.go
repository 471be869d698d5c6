package gateway

import (
	"context"
	"fmt"
	"html"
	"math/rand"
	"strings"
	"sync"
	"time"

	"jobready-backend/internal/domain"
)

var mockSuggestions = []string{
	"Add specific examples from your experience",
	"Quantify your achievements where possible",
	"Connect your answer more directly to the job requirements",
}

var mockAdvice = []string{
	"That's a great question! Based on current market trends, I'd recommend focusing on developing both technical and soft skills. Consider exploring remote work opportunities which are increasingly available globally.",
	"For career development in Sri Lanka and developing countries, I suggest building a strong online presence through platforms like LinkedIn and GitHub. Remote work can open up international opportunities.",
	"Skill development is key to career growth. Consider online courses, certifications, and practical projects. Focus on in-demand skills like digital marketing, programming, or data analysis.",
	"The job market is evolving rapidly. Stay updated with industry trends, network actively, and don't hesitate to apply for positions that stretch your capabilities - growth happens outside your comfort zone!",
	"Building a professional network is crucial. Attend virtual events, join professional groups, and engage with industry content online. Many opportunities come through connections.",
}

// MockGateway produces placeholder content without any network access.
type MockGateway struct {
	mu  sync.Mutex
	rng *rand.Rand
}

// NewMockGateway uses src for scores and advice selection. A nil src is
// seeded from the clock.
func NewMockGateway(src rand.Source) *MockGateway {
	if src == nil {
		src = rand.NewSource(time.Now().UnixNano())
	}
	return &MockGateway{rng: rand.New(src)}
}

func (g *MockGateway) Name() string { return "mock" }

func (g *MockGateway) intn(n int) int {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.rng.Intn(n)
}

// tagEscaper only neutralizes markup. Name and email are validated before
// they get here and are rendered as submitted.
var tagEscaper = strings.NewReplacer("<", "&lt;", ">", "&gt;")

func (g *MockGateway) GenerateCV(ctx context.Context, cv domain.CVContent) (string, error) {
	var b strings.Builder
	b.WriteString(`<div class="max-w-4xl mx-auto bg-white p-8 shadow-lg">` + "\n")
	b.WriteString(`  <header class="border-b-2 border-gray-200 pb-6 mb-6">` + "\n")
	fmt.Fprintf(&b, "    <h1 class=\"text-3xl font-bold text-gray-800\">%s</h1>\n", tagEscaper.Replace(cv.FullName))
	b.WriteString(`    <div class="text-gray-600 mt-2">` + "\n")
	fmt.Fprintf(&b, "      <p>%s</p>\n", tagEscaper.Replace(cv.Email))
	for _, line := range []string{cv.Phone, cv.Location} {
		if line != "" {
			fmt.Fprintf(&b, "      <p>%s</p>\n", html.EscapeString(line))
		}
	}
	b.WriteString("    </div>\n  </header>\n")

	if cv.Summary != "" {
		section(&b, "Professional Summary", `<p class="text-gray-700 leading-relaxed">`+html.EscapeString(cv.Summary)+`</p>`)
	}
	if len(cv.Skills) > 0 {
		var tags strings.Builder
		tags.WriteString(`<div class="flex flex-wrap gap-2">`)
		for _, skill := range cv.Skills {
			tags.WriteString(`<span class="bg-blue-100 text-blue-800 px-3 py-1 rounded-full text-sm">` + html.EscapeString(skill) + `</span>`)
		}
		tags.WriteString(`</div>`)
		section(&b, "Skills", tags.String())
	}
	if cv.Experience != "" {
		section(&b, "Experience", `<div class="text-gray-700 leading-relaxed whitespace-pre-line">`+html.EscapeString(cv.Experience)+`</div>`)
	}
	if cv.Education != "" {
		section(&b, "Education", `<div class="text-gray-700 leading-relaxed whitespace-pre-line">`+html.EscapeString(cv.Education)+`</div>`)
	}
	b.WriteString("</div>\n")
	return b.String(), nil
}

func section(b *strings.Builder, heading, body string) {
	b.WriteString(`  <section class="mb-6">` + "\n")
	fmt.Fprintf(b, "    <h2 class=\"text-xl font-semibold text-gray-800 border-b border-gray-300 pb-2 mb-3\">%s</h2>\n", heading)
	fmt.Fprintf(b, "    %s\n", body)
	b.WriteString("  </section>\n")
}

func (g *MockGateway) GenerateInterviewQuestions(ctx context.Context, jobTitle string, count int) ([]domain.InterviewQuestion, error) {
	return []domain.InterviewQuestion{
		{Question: "Tell me about yourself and your background.", ExpectedPoints: []string{"Background summary", "Relevant experience", "Career goals"}},
		{Question: fmt.Sprintf("What interests you about working as a %s?", jobTitle), ExpectedPoints: []string{"Passion for the role", "Understanding of responsibilities", "Career alignment"}},
		{Question: "What are your greatest strengths?", ExpectedPoints: []string{"Specific skills", "Examples", "Relevance to role"}},
		{Question: "Describe a challenging situation you faced and how you handled it.", ExpectedPoints: []string{"Problem description", "Actions taken", "Results achieved"}},
		{Question: "Where do you see yourself in 5 years?", ExpectedPoints: []string{"Career goals", "Growth mindset", "Commitment"}},
		{Question: "Why should we hire you for this position?", ExpectedPoints: []string{"Unique value proposition", "Skills match", "Enthusiasm"}},
		{Question: "What are your salary expectations?", ExpectedPoints: []string{"Market research", "Flexibility", "Value focus"}},
		{Question: "Do you have any questions for us?", ExpectedPoints: []string{"Company culture", "Role expectations", "Growth opportunities"}},
	}, nil
}

func (g *MockGateway) EvaluateAnswer(ctx context.Context, question, answer, jobTitle string) (*domain.AnswerFeedback, error) {
	score := g.intn(5) + 6
	extra := "Consider adding more specific examples to strengthen your response."
	if score >= 8 {
		extra = "Your response was well-structured and demonstrated strong communication skills."
	}
	return &domain.AnswerFeedback{
		Score:       score,
		Feedback:    "Good answer! You provided relevant information and showed understanding of the role. " + extra,
		Suggestions: append([]string(nil), mockSuggestions...),
	}, nil
}

func (g *MockGateway) GenerateCareerAdvice(ctx context.Context, message string, history []domain.Message) (string, error) {
	return mockAdvice[g.intn(len(mockAdvice))], nil
}
