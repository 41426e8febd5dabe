// ABOUTME: Request handlers: status page, language toggle, JSON API and server icon
// ABOUTME: Language comes from ?lang, the lang cookie, then Accept-Language

package web

import (
	"bytes"
	"errors"
	"image/png"
	"net/http"
	"net/url"
	"strconv"
	"strings"

	"github.com/mailru/easyjson/jwriter"

	"github.com/mauromedda/echostatus/internal/i18n"
	"github.com/mauromedda/echostatus/internal/log"
	"github.com/mauromedda/echostatus/internal/mcformat"
	"github.com/mauromedda/echostatus/internal/status"
)

func (s *Server) translator(r *http.Request) *i18n.Translator {
	var cookie string
	if c, err := r.Cookie(langCookie); err == nil {
		cookie = c.Value
	}
	lang := i18n.Resolve(r.URL.Query().Get("lang"), cookie, r.Header.Get("Accept-Language"), s.options().Language)
	return i18n.New(lang)
}

func (s *Server) handleIndex(w http.ResponseWriter, r *http.Request) {
	tr := s.translator(r)
	q := r.URL.Query()

	data := &pageData{
		tr:           tr,
		Lang:         tr.Lang(),
		Query:        strings.TrimSpace(q.Get("server")),
		PlayerFilter: strings.TrimSpace(q.Get("player")),
		Examples:     s.options().Examples,
		SwitchURL:    "/lang?to=" + string(i18n.Toggle(tr.Lang())) + "&next=" + url.QueryEscape(r.URL.RequestURI()),
	}

	code := http.StatusOK
	if _, searched := q["server"]; searched {
		if data.Query == "" {
			data.Error = tr.Get("enterServer")
			code = http.StatusBadRequest
		} else if srv, err := s.lookup.Lookup(r.Context(), data.Query); err != nil {
			log.Warn("web: lookup %q: %v", data.Query, err)
			data.Error = errorMessage(tr, err)
			code = errorStatus(err)
		} else {
			data.Result = buildResult(s.options(), tr, data.Query, srv, data.PlayerFilter)
		}
	}

	var buf bytes.Buffer
	if err := s.page.ExecuteTemplate(&buf, "index.html", data); err != nil {
		log.Error("web: render page: %v", err)
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(code)
	_, _ = buf.WriteTo(w)
}

// handleLang stores the chosen language in a cookie and redirects back.
func (s *Server) handleLang(w http.ResponseWriter, r *http.Request) {
	lang, ok := i18n.Parse(r.URL.Query().Get("to"))
	if !ok {
		lang = i18n.Toggle(s.translator(r).Lang())
	}
	http.SetCookie(w, &http.Cookie{
		Name:     langCookie,
		Value:    string(lang),
		Path:     "/",
		MaxAge:   365 * 24 * 60 * 60,
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
	http.Redirect(w, r, localRedirect(r.URL.Query().Get("next")), http.StatusSeeOther)
}

// localRedirect accepts only same-origin paths.
func localRedirect(next string) string {
	if !strings.HasPrefix(next, "/") || strings.HasPrefix(next, "//") || strings.HasPrefix(next, "/\\") {
		return "/"
	}
	return next
}

func (s *Server) handleAPI(w http.ResponseWriter, r *http.Request) {
	tr := s.translator(r)
	srv, err := s.lookup.Lookup(r.Context(), r.PathValue("address"))
	if err != nil {
		writeJSONError(w, errorStatus(err), errorCode(err), errorMessage(tr, err))
		return
	}

	f := mcformat.NewFormatter(tr.Get("noDescription"))
	out := &jwriter.Writer{}
	out.RawString(`{"server":`)
	srv.MarshalEasyJSON(out)
	out.RawString(`,"motd":{"rendered":`)
	out.String(string(sanitizeMOTD(f.RenderLines(srv.MOTD.Raw))))
	out.RawString(`,"plain":`)
	out.String(f.StripLines(srv.MOTD.Raw))
	out.RawString(`}}`)
	writeJSON(w, http.StatusOK, out)
}

func (s *Server) handleIcon(w http.ResponseWriter, r *http.Request) {
	address := strings.TrimSuffix(r.PathValue("address"), ".png")
	srv, err := s.lookup.Lookup(r.Context(), address)
	if err != nil {
		http.Error(w, err.Error(), errorStatus(err))
		return
	}
	img, err := status.DecodeIcon(srv.Icon)
	if err != nil {
		if errors.Is(err, status.ErrNoIcon) {
			http.NotFound(w, r)
			return
		}
		http.Error(w, err.Error(), http.StatusBadGateway)
		return
	}
	if size, err := strconv.Atoi(r.URL.Query().Get("size")); err == nil {
		img = status.ScaleIcon(img, size)
	}

	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		log.Error("web: encode icon: %v", err)
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "image/png")
	w.Header().Set("Cache-Control", "public, max-age="+strconv.Itoa(iconMaxAge))
	_, _ = buf.WriteTo(w)
}

func errorStatus(err error) int {
	switch {
	case errors.Is(err, status.ErrInvalidAddress):
		return http.StatusBadRequest
	case errors.Is(err, status.ErrTimeout):
		return http.StatusGatewayTimeout
	default:
		return http.StatusBadGateway
	}
}

func errorCode(err error) string {
	var httpErr *status.HTTPError
	switch {
	case errors.Is(err, status.ErrInvalidAddress):
		return "invalid_address"
	case errors.Is(err, status.ErrTimeout):
		return "timeout"
	case errors.As(err, &httpErr):
		return "upstream_http"
	default:
		return "connection"
	}
}

func writeJSONError(w http.ResponseWriter, code int, kind, message string) {
	out := &jwriter.Writer{}
	out.RawString(`{"error":`)
	out.String(kind)
	out.RawString(`,"message":`)
	out.String(message)
	out.RawByte('}')
	writeJSON(w, code, out)
}

func writeJSON(w http.ResponseWriter, code int, out *jwriter.Writer) {
	if out.Error != nil {
		log.Error("web: encode json: %v", out.Error)
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(code)
	_, _ = out.DumpTo(w)
}
