package sound

import (
	"bytes"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/LaibaSiddique-GW/Puzzle-Hackathon-ACM/pkg/log"
	"github.com/hajimehoshi/ebiten/v2/audio"
	"github.com/hajimehoshi/ebiten/v2/audio/vorbis"
)

const sampleRate = 44100

// Cue is a sound effect.
type Cue int

const (
	CueClick Cue = iota
	CueWin
	CueFire
)

func (c Cue) String() string {
	switch c {
	case CueClick:
		return "Click"
	case CueWin:
		return "Win"
	case CueFire:
		return "Fire"
	}
	return "Unknown"
}

type cueAsset struct {
	file   string
	volume float64
	loop   bool
}

var cueAssets = map[Cue]cueAsset{
	CueClick: {file: "SFX_UI_Click_1.ogg", volume: 0.25},
	CueWin:   {file: "SFX_Game_Success.ogg", volume: 0.4},
	CueFire:  {file: "SFX_Loop_Fire.ogg", volume: 0.25, loop: true},
}

// Player plays cues loaded from an assets directory. Missing or undecodable
// files leave their cue silent.
type Player struct {
	context *audio.Context
	players map[Cue]*audio.Player
	muted   bool
}

type NewPlayerOptions struct {
	AssetsDir string
	Mute      bool
}

func NewPlayer(opts NewPlayerOptions) *Player {
	p := &Player{
		players: make(map[Cue]*audio.Player),
		muted:   opts.Mute,
	}
	if opts.Mute {
		log.Info("Sound muted")
		return p
	}

	p.context = audio.NewContext(sampleRate)
	for cue, asset := range cueAssets {
		player, err := p.load(filepath.Join(opts.AssetsDir, asset.file), asset)
		if err != nil {
			log.Warn("Sound %s disabled: %v", cue, err)
			continue
		}
		p.players[cue] = player
	}
	return p
}

func (p *Player) load(path string, asset cueAsset) (*audio.Player, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %v", path, err)
	}
	stream, err := vorbis.DecodeWithSampleRate(sampleRate, bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("failed to decode %s: %v", path, err)
	}

	var src io.Reader = stream
	if asset.loop {
		src = audio.NewInfiniteLoop(stream, stream.Length())
	}
	player, err := p.context.NewPlayer(src)
	if err != nil {
		return nil, fmt.Errorf("failed to create player for %s: %v", path, err)
	}
	player.SetVolume(asset.volume)
	return player, nil
}

// Play starts c from the beginning.
func (p *Player) Play(c Cue) {
	player, ok := p.players[c]
	if !ok {
		return
	}
	if err := player.Rewind(); err != nil {
		log.Warn("Failed to rewind sound %s: %v", c, err)
		return
	}
	player.Play()
}

// Stop halts c and rewinds it.
func (p *Player) Stop(c Cue) {
	player, ok := p.players[c]
	if !ok {
		return
	}
	player.Pause()
	if err := player.Rewind(); err != nil {
		log.Warn("Failed to rewind sound %s: %v", c, err)
	}
}

// StopAll halts every cue.
func (p *Player) StopAll() {
	for c := range p.players {
		p.Stop(c)
	}
}

func (p *Player) Close() {
	for c, player := range p.players {
		if err := player.Close(); err != nil {
			log.Warn("Failed to close sound %s: %v", c, err)
		}
	}
	p.players = map[Cue]*audio.Player{}
}
