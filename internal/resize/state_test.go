package resize

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMaxWidth(t *testing.T) {
	tests := []struct {
		name string
		in   BoundsInput
		want int
	}{
		{"fixed max wins", BoundsInput{ContainerWidth: 500, HandleWidth: 20, FixedMax: 300, Fullscreen: true}, 300},
		{"normal", BoundsInput{ContainerWidth: 500, HandleWidth: 20}, 500},
		{"container owns handle", BoundsInput{ContainerWidth: 500, HandleWidth: 20, ContainerOwnsHandle: true}, 480},
		{"fullscreen", BoundsInput{ContainerWidth: 500, HandleWidth: 20, Fullscreen: true}, 480},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, MaxWidth(tt.in))
		})
	}
}

func TestClamp(t *testing.T) {
	b := Bounds{Min: 350, Max: 800}
	assert.Equal(t, 800, Clamp(900, b))
	assert.Equal(t, 350, Clamp(100, b))
	assert.Equal(t, 500, Clamp(500, b))
	assert.Equal(t, 350, Clamp(100, Bounds{Min: 350, Max: 200}), "values below the minimum end at the minimum")
	assert.Equal(t, 200, Clamp(400, Bounds{Min: 350, Max: 200}), "values above the minimum end at an undersized maximum")
}

func TestInitial(t *testing.T) {
	assert.Equal(t, 40, Initial(Options{MinWidth: 40}).Width, "initial width defaults to the minimum")
	assert.Equal(t, 60, Initial(Options{MinWidth: 40, InitialWidth: 60}).Width)
	assert.True(t, Initial(Options{DefaultToMaxWidth: true}).DefaultPending)
}

func TestReduce_DragMoveClamps(t *testing.T) {
	o := Options{MinWidth: 350}
	bounds := BoundsInput{ContainerWidth: 800}
	s := State{Width: 400}

	s = Reduce(o, s, DragStart{X: 400})
	assert.True(t, s.Dragging)

	for _, tc := range []struct{ x, want int }{
		{900, 800},
		{100, 350},
		{500, 500},
	} {
		got := Reduce(o, s, DragMove{X: tc.x, Bounds: bounds})
		assert.Equal(t, tc.want, got.Width, "move to %d", tc.x)
	}
}

func TestReduce_MoveWhileIdleIsIgnored(t *testing.T) {
	s := State{Width: 400}
	got := Reduce(Options{}, s, DragMove{X: 10, Bounds: BoundsInput{ContainerWidth: 800}})
	assert.Equal(t, s, got)
}

func TestReduce_SecondDragStartIsIgnored(t *testing.T) {
	s := Reduce(Options{}, State{Width: 400}, DragStart{X: 10})
	got := Reduce(Options{}, s, DragStart{X: 50})
	assert.Equal(t, 10, got.Drag.Anchor)
}

func TestReduce_DragStartClearsRemembered(t *testing.T) {
	s := State{Width: 600, Remembered: 900, HasRemembered: true}
	s = Reduce(Options{}, s, DragStart{X: 600})
	assert.False(t, s.HasRemembered)
	assert.Zero(t, s.Remembered)
}

func TestReduce_DragEndKeepsWidth(t *testing.T) {
	s := Reduce(Options{}, State{Width: 400}, DragStart{X: 400})
	s = Reduce(Options{}, s, DragMove{X: 450, Bounds: BoundsInput{ContainerWidth: 800}})
	s = Reduce(Options{}, s, DragEnd{})
	again := Reduce(Options{}, s, DragEnd{})

	assert.False(t, s.Dragging)
	assert.Equal(t, 450, s.Width)
	assert.Equal(t, s, again, "ending twice equals ending once")
}

func TestReconcile_FullscreenRoundTrip(t *testing.T) {
	full := BoundsInput{ContainerWidth: 1000}
	normal := BoundsInput{ContainerWidth: 600}
	s := State{Width: 900}

	s = Reconcile(normal, s)
	assert.Equal(t, 600, s.Width)
	assert.True(t, s.HasRemembered)
	assert.Equal(t, 900, s.Remembered)

	s = Reconcile(full, s)
	assert.Equal(t, 900, s.Width, "remembered width is restored")

	s = Reconcile(full, s)
	assert.Equal(t, 900, s.Width, "reconciliation is stable")
}

func TestReconcile_NoClampWhileFullscreen(t *testing.T) {
	s := Reconcile(BoundsInput{ContainerWidth: 500, HandleWidth: 20, Fullscreen: true}, State{Width: 490})
	assert.Equal(t, 490, s.Width, "width set on entering fullscreen stands")
	assert.Equal(t, 490, s.Remembered)
}

func TestReconcile_RememberedLargerThanMaxIsNotRestored(t *testing.T) {
	s := State{Width: 500, Remembered: 900, HasRemembered: true}
	s = Reconcile(BoundsInput{ContainerWidth: 700}, s)
	assert.Equal(t, 500, s.Width)
}

func TestReduce_DefaultToMaxFiresOnce(t *testing.T) {
	o := Options{MinWidth: 100, DefaultToMaxWidth: true}
	s := Initial(o)

	s = Reduce(o, s, BoundsChanged{Bounds: BoundsInput{ContainerWidth: 800}})
	assert.Equal(t, 800, s.Width)
	assert.False(t, s.DefaultPending)

	s = Reduce(o, s, BoundsChanged{Bounds: BoundsInput{ContainerWidth: 1200}})
	assert.Equal(t, 800, s.Width, "a later resize must not snap to the maximum again")
}

func TestReduce_DefaultToMaxSkippedInFullscreen(t *testing.T) {
	o := Options{MinWidth: 100, DefaultToMaxWidth: true}
	s := Reduce(o, Initial(o), BoundsChanged{Bounds: BoundsInput{ContainerWidth: 800, Fullscreen: true}})
	assert.Equal(t, 100, s.Width)
	assert.False(t, s.DefaultPending, "the flag is consumed even when the snap is skipped")
}

func TestReduce_SetWidthClampsAndForgetsRemembered(t *testing.T) {
	o := Options{MinWidth: 100}
	bounds := BoundsInput{ContainerWidth: 600}
	s := State{Width: 300, Remembered: 500, HasRemembered: true}

	s = Reduce(o, s, SetWidth{Width: 900, Bounds: bounds})
	assert.Equal(t, 600, s.Width)
	assert.False(t, s.HasRemembered)

	s = Reduce(o, s, SetWidth{Width: 10, Bounds: bounds})
	assert.Equal(t, 100, s.Width)
}

func TestReduce_SetWidthIgnoredWhileDragging(t *testing.T) {
	s := Reduce(Options{}, State{Width: 300}, DragStart{X: 10})
	got := Reduce(Options{}, s, SetWidth{Width: 200, Bounds: BoundsInput{ContainerWidth: 600}})
	assert.Equal(t, 300, got.Width)
}
