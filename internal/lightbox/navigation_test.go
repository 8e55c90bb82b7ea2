package lightbox

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestComputeNext(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name    string
		current int
		length  int
		loop    bool
		want    int
		wantOK  bool
	}{
		{name: "middle advances", current: 0, length: 3, loop: false, want: 1, wantOK: true},
		{name: "last wraps with loop", current: 2, length: 3, loop: true, want: 0, wantOK: true},
		{name: "last stops without loop", current: 2, length: 3, loop: false, wantOK: false},
		{name: "empty gallery", current: 0, length: 0, loop: true, wantOK: false},
		{name: "single image loops to itself", current: 0, length: 1, loop: true, want: 0, wantOK: true},
		{name: "negative index re-enters at start", current: -4, length: 3, loop: false, want: 0, wantOK: true},
		{name: "index past end without loop", current: 7, length: 3, loop: false, wantOK: false},
		{name: "index past end with loop", current: 7, length: 3, loop: true, want: 0, wantOK: true},
	}

	for _, tc := range cases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			got, ok := ComputeNext(tc.current, tc.length, tc.loop)
			require.Equal(t, tc.wantOK, ok)
			if tc.wantOK {
				require.Equal(t, tc.want, got)
			}
		})
	}
}

func TestComputePrev(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name    string
		current int
		length  int
		loop    bool
		want    int
		wantOK  bool
	}{
		{name: "middle steps back", current: 2, length: 3, loop: false, want: 1, wantOK: true},
		{name: "first wraps with loop", current: 0, length: 3, loop: true, want: 2, wantOK: true},
		{name: "first stops without loop", current: 0, length: 3, loop: false, wantOK: false},
		{name: "empty gallery", current: 0, length: 0, loop: true, wantOK: false},
		{name: "index past end re-enters at last", current: 9, length: 3, loop: false, want: 2, wantOK: true},
		{name: "negative index without loop", current: -1, length: 3, loop: false, wantOK: false},
	}

	for _, tc := range cases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			got, ok := ComputePrev(tc.current, tc.length, tc.loop)
			require.Equal(t, tc.wantOK, ok)
			if tc.wantOK {
				require.Equal(t, tc.want, got)
			}
		})
	}
}

func TestNavigationCyclesBackToStart(t *testing.T) {
	t.Parallel()

	for length := 1; length <= 7; length++ {
		for start := 0; start < length; start++ {
			next, prev := start, start
			for step := 0; step < length; step++ {
				var ok bool
				next, ok = ComputeNext(next, length, true)
				require.True(t, ok)
				prev, ok = ComputePrev(prev, length, true)
				require.True(t, ok)
			}
			require.Equal(t, start, next, "next closure length=%d start=%d", length, start)
			require.Equal(t, start, prev, "prev closure length=%d start=%d", length, start)
		}
	}
}

func TestNextAndPrevEmitNavigation(t *testing.T) {
	t.Parallel()

	props := Props{Images: threeImages(), CurrentIndex: 2, OverlayActive: true, Options: DefaultOptions()}
	require.Equal(t, []Event{NavigationRequested{Index: 0}}, Next(props))
	require.Equal(t, []Event{NavigationRequested{Index: 1}}, Prev(props))

	props.Options.Loop = false
	require.Empty(t, Next(props))

	props.CurrentIndex = 0
	require.Empty(t, Prev(props))
}

func threeImages() []Image {
	return []Image{
		{ID: "1", Src: "https://unsplash.it/500", Caption: "Image 1"},
		{ID: "2", Src: "https://unsplash.it/501"},
		{ID: "3", Src: "https://unsplash.it/502", Caption: "Image 3"},
	}
}
