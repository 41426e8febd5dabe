// ABOUTME: View model for the status page: overview, MOTD, players and info cards
// ABOUTME: Maps lookup errors onto translated messages

package web

import (
	"errors"
	"html/template"
	"net/url"
	"strconv"
	"time"

	"github.com/mauromedda/echostatus/internal/i18n"
	"github.com/mauromedda/echostatus/internal/mcformat"
	"github.com/mauromedda/echostatus/internal/status"
)

type pageData struct {
	tr *i18n.Translator

	Lang         i18n.Lang
	Query        string
	PlayerFilter string
	Examples     []string
	Error        string
	Result       *resultView
	SwitchURL    string
}

// T translates key for the template.
func (p *pageData) T(key string) string { return p.tr.Get(key) }

// Flag is the flag of the current language.
func (p *pageData) Flag() string { return p.tr.Flag() }

// Label is the short code of the current language.
func (p *pageData) Label() string { return p.tr.Label() }

type infoItem struct {
	Label string
	Value string
}

type resultView struct {
	Address       string
	IconURL       string
	Badge         status.Badge
	BadgeText     string
	Version       string
	PlayersOnline string
	PlayersMax    string
	ShowMOTD      bool
	MOTD          template.HTML
	MOTDPlain     string
	Players       []string
	TotalPlayers  int
	Info          []infoItem
}

func buildResult(opts *Options, tr *i18n.Translator, query string, srv *status.Server, playerFilter string) *resultView {
	f := mcformat.NewFormatter(tr.Get("noDescription"))
	badge := status.BadgeFor(srv.Online)

	v := &resultView{
		Address:       srv.Address(),
		Badge:         badge,
		BadgeText:     tr.Get(badge.TextKey),
		Version:       orNA(srv.Version),
		PlayersOnline: tr.FormatNumber(srv.Players.Online),
		PlayersMax:    tr.FormatNumber(srv.Players.Max),
		ShowMOTD:      srv.MOTD.Raw == nil || len(srv.MOTD.Raw) > 0,
		TotalPlayers:  len(srv.Players.List),
	}
	if srv.Icon != "" {
		v.IconURL = "/icon/" + url.PathEscape(query) + ".png?size=64"
	}
	if v.ShowMOTD {
		v.MOTD = sanitizeMOTD(f.RenderLines(srv.MOTD.Raw))
		v.MOTDPlain = f.StripLines(srv.MOTD.Raw)
	}
	v.Players = srv.MatchPlayers(playerFilter, opts.PlayerLimit)
	v.Info = infoItems(tr, srv, opts.Location)
	return v
}

func infoItems(tr *i18n.Translator, srv *status.Server, loc *time.Location) []infoItem {
	var items []infoItem
	add := func(key, value string) {
		if value != "" {
			items = append(items, infoItem{Label: tr.Get(key), Value: value})
		}
	}
	add("software", srv.Software)
	add("version", srv.Version)
	add("gamemode", srv.Gamemode)
	add("map", srv.Map)
	if srv.Protocol != status.NotAvailable {
		add("protocol", srv.Protocol)
	}
	if srv.IP != srv.Hostname {
		add("ip", srv.IP)
	}
	add("port", strconv.Itoa(srv.Port))
	ts := srv.RetrievedAt
	if ts.IsZero() {
		ts = time.Now()
	}
	add("lastQuery", tr.FormatTime(ts, loc))
	return items
}

// errorMessage maps a lookup error onto the translated taxonomy.
func errorMessage(tr *i18n.Translator, err error) string {
	var (
		httpErr *status.HTTPError
		connErr *status.ConnectionError
	)
	switch {
	case errors.Is(err, status.ErrInvalidAddress):
		return tr.Get("invalidIP")
	case errors.Is(err, status.ErrTimeout):
		return tr.Get("timeout")
	case errors.As(err, &httpErr):
		return tr.Get("connectionError") + ": " + httpErr.Error()
	case errors.As(err, &connErr):
		return tr.Get("connectionError") + ": " + connErr.Err.Error()
	default:
		return tr.Get("connectionError") + ": " + err.Error()
	}
}

func orNA(s string) string {
	if s == "" {
		return status.NotAvailable
	}
	return s
}
