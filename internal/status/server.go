// ABOUTME: Normalized server status with the defaults the UI relies on
// ABOUTME: Encodes to JSON with the easyjson writer for the API endpoint

package status

import (
	"strconv"
	"time"

	"github.com/mailru/easyjson/jwriter"
)

// DefaultPort is the standard Minecraft Java port; addresses using it are
// displayed without the port suffix.
const DefaultPort = 25565

// NotAvailable stands in for missing textual fields.
const NotAvailable = "N/A"

// Player is one entry of the online player sample.
type Player struct {
	Name string
	UUID string
}

// Players summarizes player counts and the sample list.
type Players struct {
	Online int
	Max    int
	List   []Player
}

// MOTD holds the description lines in the three upstream encodings. A nil
// slice means the upstream omitted it.
type MOTD struct {
	Raw   []string
	Clean []string
	HTML  []string
}

// Server is the normalized result of a lookup.
type Server struct {
	Online      bool
	IP          string
	Port        int
	Hostname    string
	Version     string
	Protocol    string
	Players     Players
	MOTD        MOTD
	Icon        string
	Software    string
	Map         string
	Gamemode    string
	ServerID    string
	EULABlocked bool
	RetrievedAt time.Time
	Debug       map[string]interface{}
}

// Address is the display address: hostname, plus port when not the default.
func (s *Server) Address() string {
	if s.Port == DefaultPort {
		return s.Hostname
	}
	return s.Hostname + ":" + strconv.Itoa(s.Port)
}

// PlayerNames returns at most limit player names (all when limit <= 0).
func (s *Server) PlayerNames(limit int) []string {
	list := s.Players.List
	if limit > 0 && len(list) > limit {
		list = list[:limit]
	}
	names := make([]string, len(list))
	for i, p := range list {
		names[i] = p.Name
	}
	return names
}

// normalize applies defaults to a decoded payload.
func normalize(p *payload, now time.Time) *Server {
	s := &Server{
		Online:      p.Online,
		IP:          orDefault(p.IP, NotAvailable),
		Port:        p.Port,
		Hostname:    orDefault(p.Hostname, NotAvailable),
		Version:     p.Version,
		Protocol:    orDefault(p.Protocol, NotAvailable),
		Players:     Players{Online: p.Players.Online, Max: p.Players.Max, List: p.Players.List},
		MOTD:        MOTD{Raw: p.MOTD.Raw, Clean: p.MOTD.Clean, HTML: p.MOTD.HTML},
		Icon:        p.Icon,
		Software:    p.Software,
		Map:         p.Map,
		Gamemode:    p.Gamemode,
		ServerID:    p.ServerID,
		EULABlocked: p.EULABlocked,
		RetrievedAt: now.UTC(),
		Debug:       p.Debug,
	}
	if s.Port == 0 {
		s.Port = DefaultPort
	}
	if s.Players.List == nil {
		s.Players.List = []Player{}
	}
	if s.Debug == nil {
		s.Debug = map[string]interface{}{}
	}
	return s
}

func orDefault(v, def string) string {
	if v == "" {
		return def
	}
	return v
}

// Badge describes how the online state is shown.
type Badge struct {
	TextKey string // translation key
	Class   string // CSS class
	Icon    string
}

// BadgeFor returns the badge for an online or offline server.
func BadgeFor(online bool) Badge {
	if online {
		return Badge{TextKey: "online", Class: "status-online", Icon: "●"}
	}
	return Badge{TextKey: "offline", Class: "status-offline", Icon: "●"}
}

// MarshalEasyJSON writes the server as a JSON object.
func (s *Server) MarshalEasyJSON(out *jwriter.Writer) {
	out.RawString(`{"online":`)
	out.Bool(s.Online)
	out.RawString(`,"ip":`)
	out.String(s.IP)
	out.RawString(`,"port":`)
	out.Int(s.Port)
	out.RawString(`,"hostname":`)
	out.String(s.Hostname)
	out.RawString(`,"address":`)
	out.String(s.Address())
	out.RawString(`,"version":`)
	out.String(s.Version)
	out.RawString(`,"protocol":`)
	out.String(s.Protocol)

	out.RawString(`,"players":{"online":`)
	out.Int(s.Players.Online)
	out.RawString(`,"max":`)
	out.Int(s.Players.Max)
	out.RawString(`,"list":[`)
	for i, p := range s.Players.List {
		if i > 0 {
			out.RawByte(',')
		}
		out.RawString(`{"name":`)
		out.String(p.Name)
		out.RawString(`,"uuid":`)
		out.String(p.UUID)
		out.RawByte('}')
	}
	out.RawString(`]}`)

	out.RawString(`,"motd":{"raw":`)
	writeStrings(out, s.MOTD.Raw)
	out.RawString(`,"clean":`)
	writeStrings(out, s.MOTD.Clean)
	out.RawString(`,"html":`)
	writeStrings(out, s.MOTD.HTML)
	out.RawByte('}')

	writeOptional(out, "icon", s.Icon)
	writeOptional(out, "software", s.Software)
	writeOptional(out, "map", s.Map)
	writeOptional(out, "gamemode", s.Gamemode)
	writeOptional(out, "serverid", s.ServerID)
	out.RawString(`,"eula_blocked":`)
	out.Bool(s.EULABlocked)
	out.RawString(`,"retrieved_at":`)
	out.String(s.RetrievedAt.Format(time.RFC3339))
	out.RawByte('}')
}

func writeStrings(out *jwriter.Writer, list []string) {
	if list == nil {
		out.RawString("null")
		return
	}
	out.RawByte('[')
	for i, v := range list {
		if i > 0 {
			out.RawByte(',')
		}
		out.String(v)
	}
	out.RawByte(']')
}

// writeOptional writes ,"key":value or ,"key":null when value is empty.
func writeOptional(out *jwriter.Writer, key, value string) {
	out.RawString(`,"` + key + `":`)
	if value == "" {
		out.RawString("null")
		return
	}
	out.String(value)
}
