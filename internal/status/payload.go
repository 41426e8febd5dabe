// ABOUTME: Upstream status payload and its easyjson lexer-based decoder
// ABOUTME: Tolerates string-or-object fields (protocol, map, player entries)

package status

import (
	"strconv"

	"github.com/mailru/easyjson/jlexer"
)

// payload is the subset of the status API response the app uses.
type payload struct {
	Online      bool
	IP          string
	Port        int
	Hostname    string
	Version     string
	Protocol    string
	Players     payloadPlayers
	MOTD        payloadLines
	Icon        string
	Software    string
	Map         string
	Gamemode    string
	ServerID    string
	EULABlocked bool
	Debug       map[string]interface{}
}

type payloadPlayers struct {
	Online int
	Max    int
	List   []Player
}

type payloadLines struct {
	Raw   []string
	Clean []string
	HTML  []string
}

// UnmarshalEasyJSON decodes the top-level status object.
func (v *payload) UnmarshalEasyJSON(in *jlexer.Lexer) {
	isTopLevel := in.IsStart()
	if in.IsNull() {
		if isTopLevel {
			in.Consumed()
		}
		in.Skip()
		return
	}
	in.Delim('{')
	for !in.IsDelim('}') {
		key := in.UnsafeFieldName(false)
		in.WantColon()
		if in.IsNull() {
			in.Skip()
			in.WantComma()
			continue
		}
		switch key {
		case "online":
			v.Online = in.Bool()
		case "ip":
			v.IP = in.String()
		case "port":
			v.Port = in.Int()
		case "hostname":
			v.Hostname = in.String()
		case "version":
			v.Version = in.String()
		case "protocol":
			v.Protocol = protocolString(in.Interface())
		case "players":
			v.Players.unmarshal(in)
		case "motd":
			v.MOTD.unmarshal(in)
		case "icon":
			v.Icon = in.String()
		case "software":
			v.Software = in.String()
		case "map":
			v.Map = cleanString(in.Interface())
		case "gamemode":
			v.Gamemode = in.String()
		case "serverid":
			v.ServerID = in.String()
		case "eula_blocked":
			v.EULABlocked = in.Bool()
		case "debug":
			if m, ok := in.Interface().(map[string]interface{}); ok {
				v.Debug = m
			}
		default:
			in.SkipRecursive()
		}
		in.WantComma()
	}
	in.Delim('}')
	if isTopLevel {
		in.Consumed()
	}
}

func (p *payloadPlayers) unmarshal(in *jlexer.Lexer) {
	in.Delim('{')
	for !in.IsDelim('}') {
		key := in.UnsafeFieldName(false)
		in.WantColon()
		if in.IsNull() {
			in.Skip()
			in.WantComma()
			continue
		}
		switch key {
		case "online":
			p.Online = in.Int()
		case "max":
			p.Max = in.Int()
		case "list":
			p.List = unmarshalPlayers(in)
		default:
			in.SkipRecursive()
		}
		in.WantComma()
	}
	in.Delim('}')
}

// unmarshalPlayers accepts both {"name","uuid"} objects and bare name strings.
func unmarshalPlayers(in *jlexer.Lexer) []Player {
	players := make([]Player, 0, 8)
	in.Delim('[')
	for !in.IsDelim(']') {
		var p Player
		if in.IsDelim('{') {
			in.Delim('{')
			for !in.IsDelim('}') {
				key := in.UnsafeFieldName(false)
				in.WantColon()
				if in.IsNull() {
					in.Skip()
					in.WantComma()
					continue
				}
				switch key {
				case "name":
					p.Name = in.String()
				case "uuid":
					p.UUID = in.String()
				default:
					in.SkipRecursive()
				}
				in.WantComma()
			}
			in.Delim('}')
		} else {
			p.Name = in.String()
		}
		players = append(players, p)
		in.WantComma()
	}
	in.Delim(']')
	return players
}

func (l *payloadLines) unmarshal(in *jlexer.Lexer) {
	in.Delim('{')
	for !in.IsDelim('}') {
		key := in.UnsafeFieldName(false)
		in.WantColon()
		if in.IsNull() {
			in.Skip()
			in.WantComma()
			continue
		}
		switch key {
		case "raw":
			l.Raw = unmarshalStrings(in)
		case "clean":
			l.Clean = unmarshalStrings(in)
		case "html":
			l.HTML = unmarshalStrings(in)
		default:
			in.SkipRecursive()
		}
		in.WantComma()
	}
	in.Delim('}')
}

func unmarshalStrings(in *jlexer.Lexer) []string {
	out := make([]string, 0, 2)
	in.Delim('[')
	for !in.IsDelim(']') {
		out = append(out, in.String())
		in.WantComma()
	}
	in.Delim(']')
	return out
}

// protocolString flattens {"version":n,"name":"1.20.4"} or a scalar into text.
func protocolString(v interface{}) string {
	switch p := v.(type) {
	case map[string]interface{}:
		if name, ok := p["name"].(string); ok && name != "" {
			return name
		}
		return protocolString(p["version"])
	case string:
		return p
	case float64:
		return strconv.FormatFloat(p, 'f', -1, 64)
	}
	return ""
}

// cleanString picks the "clean" member of a {raw,clean,html} object, or the
// value itself when it is already a string.
func cleanString(v interface{}) string {
	switch m := v.(type) {
	case string:
		return m
	case map[string]interface{}:
		s, _ := m["clean"].(string)
		return s
	}
	return ""
}

// decodePayload parses a status API body.
func decodePayload(data []byte) (*payload, error) {
	var p payload
	in := jlexer.Lexer{Data: data}
	p.UnmarshalEasyJSON(&in)
	if err := in.Error(); err != nil {
		return nil, err
	}
	return &p, nil
}
