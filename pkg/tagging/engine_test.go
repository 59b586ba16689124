package tagging_test

import (
	"context"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"github.com/walteh/gotags/gen/mockery"
	"github.com/walteh/gotags/pkg/annotation"
	"github.com/walteh/gotags/pkg/completion"
	"github.com/walteh/gotags/pkg/position"
	"github.com/walteh/gotags/pkg/surface"
	"github.com/walteh/gotags/pkg/tagging"
	"github.com/walteh/gotags/pkg/trigger"
)

func testContext(t *testing.T) context.Context {
	return zerolog.New(zerolog.TestWriter{T: t}).Level(zerolog.DebugLevel).With().Str("test", t.Name()).Logger().WithContext(context.Background())
}

func newEngine(t *testing.T, text string, cfg tagging.Config) (*tagging.Engine, *surface.Buffer) {
	t.Helper()
	buf := surface.NewBuffer(text)
	eng, err := tagging.New(buf, cfg)
	require.NoError(t, err)
	buf.Attach(eng)
	return eng, buf
}

func TestNew(t *testing.T) {
	buf := surface.NewBuffer("")

	eng, err := tagging.New(buf, tagging.Config{})
	require.NoError(t, err)
	assert.Equal(t, "@#", eng.Triggers().String())
	assert.Nil(t, eng.Candidates())
	assert.NotEmpty(t, eng.ID())

	eng, err = tagging.New(buf, tagging.Config{Triggers: []string{}})
	require.NoError(t, err)
	assert.Equal(t, 0, eng.Triggers().Len())

	_, err = tagging.New(buf, tagging.Config{Triggers: []string{"@@"}})
	require.ErrorIs(t, err, trigger.ErrInvalidSymbol)

	_, err = tagging.New(nil, tagging.Config{})
	require.Error(t, err)
}

func TestEngine_SetTriggers_KeepsSetOnError(t *testing.T) {
	eng, _ := newEngine(t, "", tagging.Config{})

	require.NoError(t, eng.SetTriggers("+"))
	assert.Equal(t, "+", eng.Triggers().String())

	require.Error(t, eng.SetTriggers("+", "ab"))
	assert.Equal(t, "+", eng.Triggers().String())
}

func TestEngine_SetCandidates_Snapshot(t *testing.T) {
	eng, _ := newEngine(t, "", tagging.Config{})
	list := []string{"world"}

	eng.SetCandidates(list)
	list[0] = "changed"

	assert.Equal(t, []string{"world"}, eng.Candidates())
}

func TestEngine_HelloWorldScenario(t *testing.T) {
	ctx := testContext(t)
	obs := mockery.NewMockObserver_tagging(t)
	eng, buf := newEngine(t, "Hello @wo", tagging.Config{
		Candidates: []string{"world", "work"},
		Observer:   obs,
	})

	obs.EXPECT().TaggedListChanged([]annotation.Tag{}).Once()
	obs.EXPECT().StartedTyping(true, '@', 10).Once()
	obs.EXPECT().TaggableListChanged([]string{"world", "work"}).Once()
	obs.EXPECT().UserDidType(&completion.Candidate{Text: "wor", Span: position.NewSpan(6, 4)}).Once()
	obs.EXPECT().TextDidChange("Hello @wor").Once()

	require.NoError(t, buf.Type(ctx, "r"))
	obs.AssertExpectations(t)

	composing, ok := eng.Composing()
	require.True(t, ok)
	assert.Equal(t, '@', composing.Symbol)
	require.NotNil(t, composing.Text)
	assert.Equal(t, "wor", *composing.Text)

	want := []annotation.Tag{{Text: "world", Symbol: "@", Span: position.NewSpan(6, 6)}}
	obs.EXPECT().TaggedListChanged(want).Once()
	obs.EXPECT().TextDidUpdateFromCommit("Hello @world ").Once()

	require.True(t, eng.Commit(ctx, "world"))
	obs.AssertExpectations(t)

	assert.Equal(t, "Hello @world ", buf.Text())
	assert.Equal(t, 13, buf.Caret())
	assert.Equal(t, want, eng.Tags())
	_, ok = eng.Composing()
	assert.False(t, ok)
	require.NoError(t, eng.Validate())
}

func TestEngine_CommitRoundTrip(t *testing.T) {
	ctx := testContext(t)
	eng, buf := newEngine(t, "hi @", tagging.Config{})

	require.NoError(t, buf.Type(ctx, "b"))
	require.True(t, eng.Commit(ctx, "bob"))

	assert.Equal(t, "hi @bob ", buf.Text())
	assert.Equal(t, []annotation.Tag{{Text: "bob", Symbol: "@", Span: position.NewSpan(3, 4)}}, eng.Tags())
}

func TestEngine_CommitBareTrigger(t *testing.T) {
	ctx := testContext(t)
	eng, buf := newEngine(t, "cc ", tagging.Config{})

	require.NoError(t, buf.Type(ctx, "#"))
	require.True(t, eng.Commit(ctx, "ops"))

	assert.Equal(t, "cc #ops ", buf.Text())
	assert.Equal(t, []annotation.Tag{{Text: "ops", Symbol: "#", Span: position.NewSpan(3, 4)}}, eng.Tags())
}

func TestEngine_CommitWithoutContextIsNoop(t *testing.T) {
	ctx := testContext(t)
	obs := mockery.NewMockObserver_tagging(t)
	eng, buf := newEngine(t, "plain", tagging.Config{Observer: obs})

	assert.False(t, eng.Commit(ctx, "bob"))
	assert.Equal(t, "plain", buf.Text())
	obs.AssertNotCalled(t, "TaggedListChanged", mock.Anything)

	obs.On("StartedTyping", mock.Anything, mock.Anything, mock.Anything).Maybe()
	obs.On("UserDidType", (*completion.Candidate)(nil)).Once()

	// A taggable context with no pattern match has no span to commit.
	buf.SetText("hi @-", 5)
	eng.OnSelectionChange(ctx)
	assert.False(t, eng.Commit(ctx, "bob"))
	assert.Equal(t, "hi @-", buf.Text())
	obs.AssertExpectations(t)
}

func TestEngine_NotTaggableClearsContext(t *testing.T) {
	ctx := testContext(t)
	obs := mockery.NewMockObserver_tagging(t)
	eng, buf := newEngine(t, "hi @bo", tagging.Config{Observer: obs})

	obs.On("StartedTyping", true, '@', 6).Once()
	obs.On("UserDidType", mock.Anything).Once()
	eng.OnSelectionChange(ctx)
	_, ok := eng.Composing()
	require.True(t, ok)

	obs.On("StartedTyping", false, rune(0), 3).Once()
	require.NoError(t, buf.MoveCaret(ctx, 3))
	_, ok = eng.Composing()
	assert.False(t, ok)

	obs.AssertExpectations(t)
}

func TestEngine_ScanReachingStartFiresNothing(t *testing.T) {
	ctx := testContext(t)
	obs := mockery.NewMockObserver_tagging(t)
	eng, buf := newEngine(t, "hi @bo", tagging.Config{Observer: obs})

	obs.On("StartedTyping", true, '@', 6).Once()
	obs.On("UserDidType", mock.Anything).Once()
	eng.OnSelectionChange(ctx)

	require.NoError(t, buf.MoveCaret(ctx, 1))
	_, ok := eng.Composing()
	assert.False(t, ok, "context is cleared even though no event fired")
	obs.AssertExpectations(t)
}

func TestEngine_NoFilteringWithoutCandidates(t *testing.T) {
	ctx := testContext(t)
	obs := mockery.NewMockObserver_tagging(t)
	_, buf := newEngine(t, "", tagging.Config{Observer: obs})

	obs.On("TaggedListChanged", mock.Anything)
	obs.On("StartedTyping", mock.Anything, mock.Anything, mock.Anything)
	obs.On("UserDidType", mock.Anything)
	obs.On("TextDidChange", mock.Anything)

	require.NoError(t, buf.Type(ctx, "@bo"))
	obs.AssertNotCalled(t, "TaggableListChanged", mock.Anything)
}

func TestEngine_EditBeforeTagRebases(t *testing.T) {
	ctx := testContext(t)
	eng, buf := newEngine(t, "Hello @wor", tagging.Config{})

	eng.OnSelectionChange(ctx)
	require.True(t, eng.Commit(ctx, "world"))

	require.NoError(t, buf.Replace(ctx, position.NewSpan(0, 5), ""))

	assert.Equal(t, " @world ", buf.Text())
	assert.Equal(t, []annotation.Tag{{Text: "world", Symbol: "@", Span: position.NewSpan(1, 6)}}, eng.Tags())
	require.NoError(t, eng.Validate())
}

func TestEngine_EditInsideTagEvicts(t *testing.T) {
	ctx := testContext(t)
	obs := mockery.NewMockObserver_tagging(t)
	eng, buf := newEngine(t, "Hello @wor", tagging.Config{Observer: obs})

	obs.On("StartedTyping", mock.Anything, mock.Anything, mock.Anything)
	obs.On("UserDidType", mock.Anything)
	obs.On("TextDidChange", mock.Anything)
	obs.On("TextDidUpdateFromCommit", mock.Anything)
	obs.On("TaggedListChanged", mock.Anything).Once()

	eng.OnSelectionChange(ctx)
	require.True(t, eng.Commit(ctx, "world"))

	obs.On("TaggedListChanged", []annotation.Tag{}).Once()
	require.NoError(t, buf.MoveCaret(ctx, 9))
	require.NoError(t, buf.Type(ctx, "x"))

	assert.Equal(t, "Hello @woxrld ", buf.Text())
	assert.Empty(t, eng.Tags())
	obs.AssertExpectations(t)
}

func TestEngine_CommitShiftsLaterTags(t *testing.T) {
	ctx := testContext(t)
	eng, buf := newEngine(t, "a @x", tagging.Config{})

	eng.OnSelectionChange(ctx)
	require.True(t, eng.Commit(ctx, "xavier"))
	require.Equal(t, "a @xavier ", buf.Text())

	// Type a new mention before the existing tag, then commit it.
	require.NoError(t, buf.MoveCaret(ctx, 0))
	require.NoError(t, buf.Type(ctx, "#o"))
	require.True(t, eng.Commit(ctx, "ops"))

	assert.Equal(t, "#ops a @xavier ", buf.Text())
	assert.Equal(t, []annotation.Tag{
		{Text: "xavier", Symbol: "@", Span: position.NewSpan(7, 7)},
		{Text: "ops", Symbol: "#", Span: position.NewSpan(0, 4)},
	}, eng.Tags())
	require.NoError(t, eng.Validate())
}

func TestEngine_WillReplaceClearsCandidateTextOnly(t *testing.T) {
	ctx := testContext(t)
	eng, _ := newEngine(t, "hi @bo", tagging.Config{})
	eng.OnSelectionChange(ctx)

	eng.OnWillReplace(ctx, position.NewCaret(6), "b")

	composing, ok := eng.Composing()
	require.True(t, ok)
	assert.Nil(t, composing.Text)
	require.NotNil(t, composing.Span)
	assert.Equal(t, position.NewSpan(3, 3), *composing.Span)
}

func TestEngine_CommitWithStaleSpanIsNoop(t *testing.T) {
	ctx := testContext(t)
	eng, buf := newEngine(t, "hi @bob", tagging.Config{})
	eng.OnSelectionChange(ctx)

	buf.SetText("hi", 2)

	assert.False(t, eng.Commit(ctx, "bob"))
	assert.Equal(t, "hi", buf.Text())
	assert.Empty(t, eng.Tags())
}
