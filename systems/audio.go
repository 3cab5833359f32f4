package systems

import (
	"errors"
	"log"
	"os"
	"sync"

	"github.com/automoto/footfall/assets"
	"github.com/automoto/footfall/components"
	cfg "github.com/automoto/footfall/config"
	"github.com/automoto/footfall/footstep"
	"github.com/hajimehoshi/ebiten/v2/audio"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// Global audio state - created once and shared across scenes
var (
	globalAudioContext *audio.Context
	globalAudioLoader  *assets.AudioLoader
	globalSFXVolume    float64 = cfg.Audio.DefaultSFXVol
	audioInitOnce      sync.Once

	// sounds already reported missing
	missingSounds = map[string]bool{}
)

// initGlobalAudio initializes the global audio context (called once).
// cfg.Audio must be final by the first call.
func initGlobalAudio() {
	audioInitOnce.Do(func() {
		globalAudioContext = audio.NewContext(cfg.Audio.SampleRate)
		globalAudioLoader = assets.NewAudioLoader(globalAudioContext, os.DirFS(cfg.Audio.SFXDir), cfg.Audio.Extensions)
	})
}

// PreloadSounds decodes every sound the footstep settings can name, so the first step on
// each terrain does not stall on decoding. Missing files are reported once here.
func PreloadSounds(settings footstep.Settings) {
	initGlobalAudio()

	for _, name := range soundNames(settings) {
		if err := globalAudioLoader.PreloadSFX(name); err != nil {
			reportSoundError(name, err)
		}
	}
}

func soundNames(settings footstep.Settings) []string {
	seen := map[string]bool{}
	var names []string
	add := func(p footstep.SoundProfile) {
		for _, n := range []string{p.Left, p.Right} {
			if n != "" && !seen[n] {
				seen[n] = true
				names = append(names, n)
			}
		}
	}
	if settings.Default != nil {
		add(*settings.Default)
	}
	for _, p := range settings.Table.Profiles() {
		add(p)
	}
	return names
}

// AudioQueue is the footstep engine's sink. Sounds are queued on the world's Audio
// singleton and played by UpdateAudio on the next tick.
type AudioQueue struct {
	world donburi.World
}

var _ footstep.AudioSink = (*AudioQueue)(nil)

func NewAudioQueue(w donburi.World) *AudioQueue {
	return &AudioQueue{world: w}
}

func (q *AudioQueue) Play(s footstep.Sound) {
	audioData := getOrCreateAudioData(q.world)
	audioData.PendingSFX = append(audioData.PendingSFX, s)
	audioData.LastPlayed = s
	audioData.Played++
}

// UpdateAudio plays the sounds queued since the last tick
func UpdateAudio(e *ecs.ECS) {
	entry, ok := components.Audio.First(e.World)
	if !ok {
		return
	}
	audioData := components.Audio.Get(entry)
	if len(audioData.PendingSFX) == 0 {
		return
	}

	initGlobalAudio()
	for _, s := range audioData.PendingSFX {
		playSFX(s, audioData.SFXVolume)
	}
	audioData.PendingSFX = audioData.PendingSFX[:0]
}

func playSFX(s footstep.Sound, sfxVolume float64) {
	volume := sfxVolume * float64(s.Volume) / 100
	if volume <= 0 {
		return
	}

	player, err := globalAudioLoader.LoadSFX(s.Name, s.Pitch, s.Pan)
	if err != nil {
		reportSoundError(s.Name, err)
		return
	}

	player.SetVolume(volume)
	player.Play()
}

func reportSoundError(name string, err error) {
	if missingSounds[name] {
		return
	}
	missingSounds[name] = true
	if errors.Is(err, assets.ErrSoundNotFound) {
		log.Printf("Warning: No file for footstep sound %q in %s", name, cfg.Audio.SFXDir)
		return
	}
	log.Printf("Warning: Could not load footstep sound %q: %v", name, err)
}

// SetSFXVolume changes the SFX volume (0.0 - 1.0)
func SetSFXVolume(e *ecs.ECS, volume float64) {
	globalSFXVolume = min(max(volume, 0), 1)
	getOrCreateAudioData(e.World).SFXVolume = globalSFXVolume
}

// GetSFXVolume returns the current SFX volume (0.0 - 1.0)
func GetSFXVolume() float64 {
	return globalSFXVolume
}

// GetOrCreateAudio returns the singleton Audio component for this ECS, creating it if needed
func GetOrCreateAudio(e *ecs.ECS) *components.AudioData {
	return getOrCreateAudioData(e.World)
}

func getOrCreateAudioData(w donburi.World) *components.AudioData {
	entry, ok := components.Audio.First(w)
	if !ok {
		entry = w.Entry(w.Create(components.Audio))
		components.Audio.SetValue(entry, components.AudioData{
			SFXVolume:  globalSFXVolume,
			PendingSFX: make([]footstep.Sound, 0, 8),
		})
	}
	return components.Audio.Get(entry)
}
