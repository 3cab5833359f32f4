package assets

import (
	"bytes"
	"encoding/binary"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"path"
	"strings"

	"github.com/hajimehoshi/ebiten/v2/audio"
	"github.com/hajimehoshi/ebiten/v2/audio/vorbis"
	"github.com/hajimehoshi/ebiten/v2/audio/wav"
)

// ErrSoundNotFound is returned when no file with an accepted extension exists for a sound name
var ErrSoundNotFound = errors.New("sound not found")

// AudioLoader handles loading and caching of footstep sounds.
// Sounds are looked up by name as <name><ext> in the loader's file system.
type AudioLoader struct {
	fsys       fs.FS
	extensions []string
	sfxCache   map[string][]byte // Cache decoded audio bytes for SFX
	context    *audio.Context
}

// NewAudioLoader creates a new audio loader reading from fsys
func NewAudioLoader(ctx *audio.Context, fsys fs.FS, extensions []string) *AudioLoader {
	return &AudioLoader{
		fsys:       fsys,
		extensions: extensions,
		sfxCache:   make(map[string][]byte),
		context:    ctx,
	}
}

// PreloadSFX decodes a sound and caches it without creating a player.
// Call this at startup to avoid decode lag on the first step.
func (l *AudioLoader) PreloadSFX(name string) error {
	_, err := l.decoded(name)
	return err
}

// LoadSFX returns a new player for the named sound at the given pitch (percent of original
// speed) and pan (-100 left to 100 right).
func (l *AudioLoader) LoadSFX(name string, pitch, pan int) (*audio.Player, error) {
	data, err := l.decoded(name)
	if err != nil {
		return nil, err
	}

	if pan != 0 {
		data = applyPan(data, pan)
	}

	var src io.Reader = bytes.NewReader(data)
	rate := l.context.SampleRate()
	if from := pitchedSampleRate(rate, pitch); from != rate {
		src = audio.Resample(bytes.NewReader(data), int64(len(data)), from, rate)
	}

	return l.context.NewPlayer(src)
}

func (l *AudioLoader) decoded(name string) ([]byte, error) {
	if cachedBytes, ok := l.sfxCache[name]; ok {
		return cachedBytes, nil
	}

	for _, ext := range l.extensions {
		p := name + ext
		data, err := fs.ReadFile(l.fsys, p)
		if err != nil {
			if errors.Is(err, fs.ErrNotExist) {
				continue
			}
			return nil, fmt.Errorf("failed to read audio file %s: %w", p, err)
		}

		decoded, err := l.decode(p, data)
		if err != nil {
			return nil, err
		}
		l.sfxCache[name] = decoded
		return decoded, nil
	}

	return nil, fmt.Errorf("%w: %s", ErrSoundNotFound, name)
}

// decode turns a wav or ogg file into 16-bit stereo PCM at the context's sample rate
func (l *AudioLoader) decode(p string, data []byte) ([]byte, error) {
	var stream io.Reader
	var err error

	switch ext := strings.ToLower(path.Ext(p)); ext {
	case ".ogg":
		stream, err = vorbis.DecodeWithSampleRate(l.context.SampleRate(), bytes.NewReader(data))
	case ".wav":
		stream, err = wav.DecodeWithSampleRate(l.context.SampleRate(), bytes.NewReader(data))
	default:
		return nil, fmt.Errorf("unsupported audio format: %s", ext)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to decode %s: %w", p, err)
	}

	decoded, err := io.ReadAll(stream)
	if err != nil {
		return nil, fmt.Errorf("failed to read decoded audio %s: %w", p, err)
	}
	return decoded, nil
}

// pitchedSampleRate is the rate the source is declared at so that resampling to rate plays it
// pitch percent faster. Pitch outside 1..1000 is treated as 100.
func pitchedSampleRate(rate, pitch int) int {
	if pitch <= 0 || pitch > 1000 || pitch == 100 {
		return rate
	}
	return rate * pitch / 100
}

// applyPan scales the channels of 16-bit little-endian stereo PCM. Pan -100 silences the right
// channel, 100 the left; the near channel stays at full level.
func applyPan(data []byte, pan int) []byte {
	pan = min(max(pan, -100), 100)
	leftGain := 1.0
	rightGain := 1.0
	if pan > 0 {
		leftGain = float64(100-pan) / 100
	} else {
		rightGain = float64(100+pan) / 100
	}

	out := make([]byte, len(data))
	frames := len(data) / 4
	for i := 0; i < frames; i++ {
		o := i * 4
		l := int16(binary.LittleEndian.Uint16(data[o:]))
		r := int16(binary.LittleEndian.Uint16(data[o+2:]))
		binary.LittleEndian.PutUint16(out[o:], uint16(int16(float64(l)*leftGain)))
		binary.LittleEndian.PutUint16(out[o+2:], uint16(int16(float64(r)*rightGain)))
	}
	copy(out[frames*4:], data[frames*4:])
	return out
}
