package gateway_test

import (
	"context"
	"math/rand"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"jobready-backend/internal/domain"
	"jobready-backend/internal/gateway"
)

func TestMockGenerateCVContainsContact(t *testing.T) {
	g := gateway.NewMockGateway(rand.NewSource(1))

	html, err := g.GenerateCV(context.Background(), domain.CVContent{
		FullName:   "Jane Doe",
		Email:      "jane@example.com",
		Skills:     []string{"Go", "SQL", "Docker"},
		Experience: "Five years of backend work",
		Education:  "BSc Computer Science",
	})
	require.NoError(t, err)
	assert.Contains(t, html, "Jane Doe")
	assert.Contains(t, html, "jane@example.com")
	assert.Contains(t, html, "Skills")
	assert.NotContains(t, html, "Professional Summary")
}

func TestMockGenerateCVKeepsEmailVerbatim(t *testing.T) {
	g := gateway.NewMockGateway(rand.NewSource(1))

	for _, email := range []string{"o'neil@example.com", "a&b@example.com"} {
		html, err := g.GenerateCV(context.Background(), domain.CVContent{
			FullName: "Shay O Neil",
			Email:    email,
		})
		require.NoError(t, err)
		assert.Contains(t, html, email)
		assert.Contains(t, html, "Shay O Neil")
	}
}

func TestMockGenerateCVEscapesMarkup(t *testing.T) {
	g := gateway.NewMockGateway(rand.NewSource(1))

	html, err := g.GenerateCV(context.Background(), domain.CVContent{
		FullName:   "Jane Doe",
		Email:      "jane@example.com",
		Summary:    "<script>alert(1)</script>",
		Skills:     []string{"<b>Go</b>"},
		Experience: "Built \"fast\" APIs & <i>tools</i>",
	})
	require.NoError(t, err)
	assert.NotContains(t, html, "<script>")
	assert.Contains(t, html, "&lt;script&gt;")
	assert.Contains(t, html, "&lt;b&gt;Go&lt;/b&gt;")
	assert.Contains(t, html, "&amp; &lt;i&gt;tools&lt;/i&gt;")
}

func TestMockInterviewQuestions(t *testing.T) {
	g := gateway.NewMockGateway(rand.NewSource(1))

	questions, err := g.GenerateInterviewQuestions(context.Background(), "Web Developer", domain.DefaultQuestionCount)
	require.NoError(t, err)
	require.Len(t, questions, 8)
	assert.Equal(t, "What interests you about working as a Web Developer?", questions[1].Question)
	for _, q := range questions {
		assert.NotEmpty(t, q.ExpectedPoints)
	}
}

func TestMockEvaluateAnswerRange(t *testing.T) {
	g := gateway.NewMockGateway(rand.NewSource(42))

	seen := map[int]bool{}
	for i := 0; i < 200; i++ {
		fb, err := g.EvaluateAnswer(context.Background(), "Q", "A", "Dev")
		require.NoError(t, err)
		assert.GreaterOrEqual(t, fb.Score, 6)
		assert.LessOrEqual(t, fb.Score, 10)
		assert.Len(t, fb.Suggestions, 3)
		if fb.Score >= 8 {
			assert.True(t, strings.HasSuffix(fb.Feedback, "strong communication skills."))
		} else {
			assert.True(t, strings.HasSuffix(fb.Feedback, "strengthen your response."))
		}
		seen[fb.Score] = true
	}
	assert.Len(t, seen, 5)
}

func TestMockAdviceIsCanned(t *testing.T) {
	g := gateway.NewMockGateway(rand.NewSource(7))

	reply, err := g.GenerateCareerAdvice(context.Background(), "How do I find remote work?", nil)
	require.NoError(t, err)
	assert.NotEmpty(t, reply)
	assert.Equal(t, "mock", g.Name())
}
