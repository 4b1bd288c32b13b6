package parser

import (
	"context"
	"errors"
	"testing"

	"github.com/poiesic/chatalogue/core"
	"github.com/poiesic/chatalogue/nlu"
	"github.com/poiesic/chatalogue/nlu/mock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew(t *testing.T) {
	t.Run("valid configuration", func(t *testing.T) {
		p, err := New(mock.NewMockIntentClassifier())
		require.NoError(t, err)
		assert.NotNil(t, p)
	})

	t.Run("with min confidence", func(t *testing.T) {
		p, err := New(mock.NewMockIntentClassifier(), WithMinConfidence(0.7))
		require.NoError(t, err)
		assert.NotNil(t, p)
	})

	t.Run("nil classifier", func(t *testing.T) {
		_, err := New(nil)
		assert.Equal(t, ErrClassifierRequired, err)
	})
}

func TestParse_SingleClause(t *testing.T) {
	p, err := New(mock.NewMockIntentClassifier())
	require.NoError(t, err)

	parse, err := p.Parse(context.Background(), "Who teaches CS 575?")
	require.NoError(t, err)

	assert.Equal(t, core.IntentInstructorLookup, parse.PrimaryIntent)
	assert.Equal(t, []string{"CS 575"}, parse.CourseCodes)
	assert.False(t, parse.MultiQuery)
	require.Len(t, parse.Subqueries, 1)

	sub := parse.Subqueries[0]
	assert.Equal(t, core.IntentInstructorLookup, sub.Intent)
	assert.Equal(t, []string{"CS 575"}, sub.CourseCodes)
	assert.Contains(t, sub.Attributes, core.AttrInstructor)
	assert.True(t, sub.HasFilter())
}

func TestParse_MultiClauseFollowUp(t *testing.T) {
	p, err := New(mock.NewMockIntentClassifier())
	require.NoError(t, err)

	parse, err := p.Parse(context.Background(), "Who teaches CS 575 and when does it meet?")
	require.NoError(t, err)

	require.Len(t, parse.Subqueries, 2)
	assert.True(t, parse.MultiQuery)

	first := parse.Subqueries[0]
	assert.Equal(t, core.IntentInstructorLookup, first.Intent)
	assert.Equal(t, []string{"CS 575"}, first.CourseCodes)

	// The second clause has no entities of its own; it inherits the course
	// from the first clause.
	second := parse.Subqueries[1]
	assert.Equal(t, []string{"CS 575"}, second.CourseCodes)
	assert.True(t, second.HasFilter())
	assert.Contains(t, second.Attributes, core.AttrTime)
}

func TestParse_FollowUpIntentRetargeting(t *testing.T) {
	classifier := mock.NewMockIntentClassifier()
	classifier.ClassifyIntentFunc = func(ctx context.Context, text string) (*nlu.IntentResult, error) {
		// The follow-up clause classifies as chitchat with low confidence.
		if text == "where is it held" {
			return &nlu.IntentResult{Primary: "chitchat", Confidence: 0.3}, nil
		}
		return &nlu.IntentResult{Primary: "course_info", Confidence: 0.9}, nil
	}

	p, err := New(classifier)
	require.NoError(t, err)

	parse, err := p.Parse(context.Background(), "Tell me about CS 575? where is it held?")
	require.NoError(t, err)

	require.Len(t, parse.Subqueries, 2)
	second := parse.Subqueries[1]
	assert.Equal(t, []string{"CS 575"}, second.CourseCodes)
	assert.Equal(t, core.IntentCourseLocation, second.Intent)
}

func TestParse_SectionAttachesToCode(t *testing.T) {
	p, err := New(mock.NewMockIntentClassifier())
	require.NoError(t, err)

	parse, err := p.Parse(context.Background(), "who teaches section B3 of CS 575?")
	require.NoError(t, err)

	assert.Equal(t, []string{"CS 575 B3"}, parse.CourseCodes)
}

func TestParse_MultiQueryRequiresDistinctIntents(t *testing.T) {
	classifier := mock.NewMockIntentClassifier()
	classifier.ClassifyIntentFunc = func(ctx context.Context, text string) (*nlu.IntentResult, error) {
		return &nlu.IntentResult{Primary: "course_info", Confidence: 0.9}, nil
	}

	p, err := New(classifier)
	require.NoError(t, err)

	parse, err := p.Parse(context.Background(), "Tell me about CS 575? Tell me about CS 669?")
	require.NoError(t, err)

	require.Len(t, parse.Subqueries, 2)
	assert.False(t, parse.MultiQuery)
}

func TestParse_ChitchatHasNoFilter(t *testing.T) {
	p, err := New(mock.NewMockIntentClassifier())
	require.NoError(t, err)

	parse, err := p.Parse(context.Background(), "hello!")
	require.NoError(t, err)

	assert.Equal(t, core.IntentChitchat, parse.PrimaryIntent)
	require.Len(t, parse.Subqueries, 1)
	assert.False(t, parse.Subqueries[0].HasFilter())
}

func TestParse_ClassifierError(t *testing.T) {
	wantErr := errors.New("embedding backend down")
	classifier := mock.NewMockIntentClassifier()
	classifier.ClassifyIntentFunc = func(ctx context.Context, text string) (*nlu.IntentResult, error) {
		return nil, wantErr
	}

	p, err := New(classifier)
	require.NoError(t, err)

	_, err = p.Parse(context.Background(), "who teaches CS 575")
	assert.ErrorIs(t, err, wantErr)
}
