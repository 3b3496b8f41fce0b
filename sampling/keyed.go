package sampling

import (
	"sync"

	"golang.org/x/crypto/blake2b"
)

// KeyedSource is a Source storing the parameters used to securely and
// *deterministically* generate shared sequences of random words among
// different parties using the hash function blake2b. Backward sequence
// security (given the digest i, compute the digest i-1) is ensured by default,
// however forward sequence security (given the digest i, compute the digest
// i+1) is only ensured if the KeyedSource is keyed.
// WARNING: KeyedSource should NOT be called by multiple threads. It does not
// make sense to do so as the resulting sequence will not be deterministic for
// a given key. For a source securely seeded with a private key use
// [ThreadSafeSource].
type KeyedSource struct {
	mutex sync.Mutex
	key   []byte
	xof   blake2b.XOF
	words *wordBuffer
}

// NewKeyedSource creates a new instance of KeyedSource.
// Accepts an optional key, else set key=nil which is treated as key=[]byte{}
// WARNING: A SOURCE INITIALISED WITH key=nil IS INSECURE!
func NewKeyedSource(key []byte) (*KeyedSource, error) {
	xof, err := blake2b.NewXOF(blake2b.OutputLengthUnknown, key)
	if err != nil {
		return nil, err
	}
	return &KeyedSource{
		key:   append([]byte(nil), key...),
		xof:   xof,
		words: newWordBuffer(),
	}, nil
}

// Key returns a copy of the key used to seed the source. This value can be
// used with NewKeyedSource to instantiate a new source that will produce the
// same stream of words.
func (s *KeyedSource) Key() (key []byte) {
	key = make([]byte, len(s.key))
	copy(key, s.key)
	return
}

// Uint32 returns the next word of the keyed stream.
// WARNING: Uint32 should NOT be called concurrently by multiple threads. If
// that occurs, the generated sequence will not be deterministic.
func (s *KeyedSource) Uint32() (uint32, error) {
	s.mutex.Lock()
	defer s.mutex.Unlock()
	return s.words.next(s.xof)
}

// Reset resets the source to its initial state, replaying the stream from the
// beginning.
func (s *KeyedSource) Reset() {
	s.mutex.Lock()
	defer s.mutex.Unlock()
	s.xof.Reset()
	s.words.n, s.words.ptr = 0, 0
}
