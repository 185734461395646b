package capture

import (
	"fmt"
	"image"
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"sync"

	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/tiff"
	_ "golang.org/x/image/webp"
)

var sequenceExtensions = map[string]bool{
	".png":  true,
	".jpg":  true,
	".jpeg": true,
	".gif":  true,
	".bmp":  true,
	".tif":  true,
	".tiff": true,
	".webp": true,
}

// Sequence replays still images from a directory as a looping camera feed
type Sequence struct {
	mu     sync.Mutex
	frames []*image.RGBA
	names  []string
	hold   int // captures per image
	count  int
	closed bool
}

// OpenSequence decodes every supported image in dir, in name order
// Each image is returned for hold consecutive captures
func OpenSequence(dir string, hold int) (*Sequence, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrDeviceUnavailable, err)
	}

	var names []string
	for _, e := range entries {
		if e.IsDir() || !sequenceExtensions[strings.ToLower(filepath.Ext(e.Name()))] {
			continue
		}
		names = append(names, e.Name())
	}
	sort.Strings(names)

	seq := &Sequence{hold: max(hold, 1)}
	for _, name := range names {
		img, err := decodeFile(filepath.Join(dir, name))
		if err != nil {
			return nil, fmt.Errorf("%w: %s: %v", ErrDeviceUnavailable, name, err)
		}
		seq.frames = append(seq.frames, toRGBA(img))
		seq.names = append(seq.names, name)
	}
	if len(seq.frames) == 0 {
		return nil, fmt.Errorf("%w: no images in %s", ErrDeviceUnavailable, dir)
	}
	return seq, nil
}

func decodeFile(path string) (image.Image, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	img, _, err := image.Decode(f)
	return img, err
}

// Len returns the number of images in the loop
func (s *Sequence) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.frames)
}

// Name returns the file name of image i
func (s *Sequence) Name(i int) string {
	return s.names[i]
}

// CaptureFrame returns the current image
// Frames are shared and must be treated as read-only
func (s *Sequence) CaptureFrame() (image.Image, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.closed {
		return nil, ErrClosed
	}
	i := (s.count / s.hold) % len(s.frames)
	s.count++
	return s.frames[i], nil
}

// Close releases the decoded frames
func (s *Sequence) Close() error {
	s.mu.Lock()
	s.closed = true
	s.frames = nil
	s.mu.Unlock()
	return nil
}
