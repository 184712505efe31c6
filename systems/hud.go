package systems

import (
	"fmt"
	"image/color"
	"strings"

	"github.com/automoto/flapping/components"
	cfg "github.com/automoto/flapping/config"
	"github.com/automoto/flapping/fonts"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text" //nolint:staticcheck // TODO: migrate to text/v2
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
	"github.com/yohamta/donburi/ecs"
	"golang.org/x/image/font"
)

const (
	hudMargin   = 10
	lineSpacing = 1.4
)

var titleFade *gween.Tween

// DrawHUD shows every player's name and score along the top edge.
func DrawHUD(ecs *ecs.ECS, screen *ebiten.Image) {
	if getMatch(ecs).State != cfg.StatePlay {
		return
	}
	face := fonts.HUD.Get()
	x := hudMargin
	for _, entry := range Players(ecs) {
		p := components.Player.Get(entry)
		label := fmt.Sprintf("%s %d", p.Name, p.Score)
		text.Draw(screen, label, face, x, hudMargin+face.Metrics().Ascent.Ceil(), cfg.UI.HeaderColor)
		x += font.MeasureString(face, label).Ceil() + 3*hudMargin
	}
}

// DrawWelcome fades in the title while the welcome screen is up.
func DrawWelcome(ecs *ecs.ECS, screen *ebiten.Image) {
	if getMatch(ecs).State != cfg.StateWelcome {
		titleFade = nil
		return
	}
	if titleFade == nil {
		titleFade = gween.New(0, 1, float32(cfg.Game.WelcomeDuration.Seconds()), ease.OutQuad)
	}
	alpha, _ := titleFade.Update(1 / float32(ebiten.TPS()))

	clr := cfg.UI.HeaderColor
	clr.A = uint8(alpha * 255)
	h := screen.Bounds().Dy()
	drawCentered(screen, cfg.Window.Title, fonts.Title.Get(), h/2, color.NRGBA(clr))
}

// DrawRegistration shows the current prompt, any warning and the players
// registered so far with their controls.
func DrawRegistration(ecs *ecs.ECS, screen *ebiten.Image) {
	if getMatch(ecs).State != cfg.StateRegistration {
		return
	}
	reg := getRegistration(ecs)
	header := fonts.Header.Get()
	body := fonts.Body.Get()

	y := 120
	drawCentered(screen, reg.Msg, header, y, cfg.UI.HeaderColor)
	if reg.Warning != "" {
		y += lineHeight(body)
		drawCentered(screen, reg.Warning, body, y, cfg.Red)
	}

	y += 2 * lineHeight(header)
	for _, entry := range reg.Entries {
		drawCentered(screen, describeEntry(entry), body, y, cfg.UI.BodyColor)
		y += lineHeight(body)
	}

	help := "Enter: start   F5: remove last   Esc: quit   Flap again: change name"
	drawCentered(screen, help, fonts.HUD.Get(), screen.Bounds().Dy()-2*hudMargin, cfg.UI.BodyColor)
}

// DrawScoreboard shows the round result, or a black screen while the
// scoreboard is blacked out.
func DrawScoreboard(ecs *ecs.ECS, screen *ebiten.Image) {
	match := getMatch(ecs)
	if match.State != cfg.StateScoreboard {
		return
	}
	if match.Scoreboard == cfg.ScoreboardBlackout {
		screen.Fill(color.Black)
		return
	}

	header := fonts.Header.Get()
	body := fonts.Body.Get()

	y := 120
	title := fmt.Sprintf("Round %d of %d", match.Round, match.Rounds)
	if match.IsFinalRound() {
		title = "Final results"
	}
	drawCentered(screen, title, header, y, cfg.UI.HeaderColor)
	if match.IsFinalRound() {
		y += lineHeight(header)
		drawCentered(screen, "Winner: "+strings.Join(match.Winners, ", "), header, y, cfg.UI.HeaderColor)
	}

	y += 2 * lineHeight(header)
	for _, entry := range Players(ecs) {
		p := components.Player.Get(entry)
		line := fmt.Sprintf("%-12s score %3d   rounds won %d", p.Name, p.Score, p.RoundWins)
		drawCentered(screen, line, body, y, cfg.UI.BodyColor)
		y += lineHeight(body)
	}

	drawCentered(screen, "Press your flap to continue", fonts.HUD.Get(), screen.Bounds().Dy()-2*hudMargin, cfg.UI.BodyColor)
}

func describeEntry(e *components.RegistrationEntry) string {
	control := func(evt fmt.Stringer, ok bool) string {
		if !ok {
			return "..."
		}
		return evt.String()
	}
	parts := []string{e.Name, "flap " + control(e.Flap, e.Flap != nil)}
	if e.IsHat() {
		parts = append(parts, "steer "+e.Left.String())
	} else {
		parts = append(parts,
			"left "+control(e.Left, e.Left != nil),
			"right "+control(e.Right, e.Right != nil))
	}
	return strings.Join(parts, "   ")
}

func drawCentered(screen *ebiten.Image, s string, face font.Face, y int, clr color.Color) {
	x := (screen.Bounds().Dx() - font.MeasureString(face, s).Ceil()) / 2
	text.Draw(screen, s, face, x, y, clr)
}

func lineHeight(face font.Face) int {
	return int(float64(face.Metrics().Height.Ceil()) * lineSpacing)
}
