// Package sampling provides sources of uniformly distributed random 32-bit words.
//
// A Source adapts an underlying generator of uniform random bytes into the
// word-at-a-time capability consumed by the uniform package. The package does
// not implement a generator of its own: production code wires in crypto/rand
// through ThreadSafeSource, while KeyedSource derives a deterministic stream
// from a blake2b XOF for shared sequences and reproducible tests.
package sampling

import (
	"crypto/rand"
	"encoding/binary"
	"io"
)

// Source is an interface for the generation of fresh uniformly distributed
// 32-bit words. A non-nil error means the underlying generator could not
// produce a value; callers must not use the word returned alongside an error.
type Source interface {
	Uint32() (uint32, error)
}

const bufferSize = 1024

// wordBuffer amortizes reads from a byte generator by refilling a fixed
// buffer and handing out 4 bytes at a time, big-endian.
type wordBuffer struct {
	buf []byte
	n   int
	ptr int
}

func newWordBuffer() *wordBuffer {
	return &wordBuffer{
		buf: make([]byte, bufferSize),
	}
}

func (b *wordBuffer) next(r io.Reader) (uint32, error) {
	// Refills the buffer if it runs empty. A short fill is fine as long as it
	// covers at least one word; a trailing partial word is discarded.
	if b.ptr == b.n {
		n, err := io.ReadAtLeast(r, b.buf, 4)
		if err != nil {
			return 0, err
		}
		b.n = n - n%4
		b.ptr = 0
	}
	w := binary.BigEndian.Uint32(b.buf[b.ptr : b.ptr+4])
	b.ptr += 4
	return w, nil
}

// ReaderSource adapts any reader of uniform random bytes (for example an XOF
// or crypto/rand.Reader) into a Source. Reads are buffered, so a ReaderSource
// cannot be used concurrently by multiple threads.
type ReaderSource struct {
	r     io.Reader
	words *wordBuffer
}

// NewReaderSource returns a Source drawing its words from r.
func NewReaderSource(r io.Reader) *ReaderSource {
	return &ReaderSource{r: r, words: newWordBuffer()}
}

// Uint32 returns the next 32-bit word of the stream. A read failure of the
// underlying reader is returned as is.
func (s *ReaderSource) Uint32() (uint32, error) {
	return s.words.next(s.r)
}

// ThreadSafeSource is a Source backed by crypto/rand.
type ThreadSafeSource struct {
}

// NewThreadSafeSource returns a new Source that is thread-safe.
func NewThreadSafeSource() (*ThreadSafeSource, error) {
	return &ThreadSafeSource{}, nil
}

// Uint32 reads one fresh word from crypto/rand. Words are read unbuffered so
// that concurrent callers never share partial state.
func (s *ThreadSafeSource) Uint32() (uint32, error) {
	var b [4]byte
	if _, err := rand.Read(b[:]); err != nil {
		return 0, err
	}
	return binary.BigEndian.Uint32(b[:]), nil
}
