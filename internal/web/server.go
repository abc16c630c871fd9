// Package web serves the browser UI and a small JSON API.
package web

import (
	"embed"
	"html/template"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/yyyklk/news-app/internal/cache"
	"github.com/yyyklk/news-app/internal/digest"
	"github.com/yyyklk/news-app/internal/filter"
	"github.com/yyyklk/news-app/internal/news"
	"go.uber.org/zap"
)

//go:embed templates
var templatesFS embed.FS

type Options struct {
	Articles []news.Article
	Digest   digest.Summarizers
	Store    *cache.Cache
	// DefaultStart is the preset start date; the end defaults to today.
	DefaultStart news.Date
	Earliest     news.Date
	Log          *zap.Logger
}

type Server struct {
	opts Options
	tmpl *template.Template
	log  *zap.Logger
	// today is swapped in tests.
	today func() news.Date
}

func New(opts Options) (*Server, error) {
	funcs := template.FuncMap{
		"inc":  func(i int) int { return i + 1 },
		"join": strings.Join,
	}
	tmpl, err := template.New("newsapp").Funcs(funcs).ParseFS(templatesFS, "templates/*.html")
	if err != nil {
		return nil, err
	}
	log := opts.Log
	if log == nil {
		log = zap.NewNop()
	}
	return &Server{opts: opts, tmpl: tmpl, log: log, today: news.Today}, nil
}

// Router builds the gin engine with all routes registered.
func (s *Server) Router() *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery(), requestLogger(s.log))
	r.SetHTMLTemplate(s.tmpl)

	r.GET("/", s.handleIndex)
	r.GET("/healthz", s.handleHealth)

	api := r.Group("/api")
	api.GET("/articles", s.handleArticles)
	api.POST("/digest", s.handleDigest)
	return r
}

func (s *Server) defaultRange() filter.DateRange {
	return filter.DateRange{Start: s.opts.DefaultStart, End: s.today()}
}

type articleView struct {
	news.Article
	Entry digest.Entry
}

type pageData struct {
	Form       form
	Earliest   string
	Err        string
	Keywords   []string
	Count      int
	Summarized bool
	Results    []articleView
}

func (s *Server) handleIndex(c *gin.Context) {
	kw := c.QueryArray("kw")
	f := form{
		From:     c.Query("from"),
		To:       c.Query("to"),
		Keywords: kw,
		Fields:   parseFields(c.Query("fields"), len(kw)),
		Action:   c.Query("action"),
	}
	f.apply(f.Action)

	data := pageData{Form: f, Earliest: s.opts.Earliest.String()}

	r, err := filter.ParseRange(f.From, f.To, s.defaultRange(), s.opts.Earliest)
	if err != nil {
		data.Err = err.Error()
		c.HTML(http.StatusOK, "index.html", data)
		return
	}
	data.Form.From, data.Form.To = r.Start.String(), r.End.String()

	q := filter.Query{Range: r, Keywords: f.Keywords}
	data.Keywords = filter.CleanKeywords(f.Keywords)
	matched := filter.Apply(s.opts.Articles, q)
	data.Count = len(matched)

	if f.Action == "summarize" && len(matched) > 0 {
		data.Summarized = true
		entries := s.opts.Digest.Run(matched, nil)
		for i, a := range matched {
			data.Results = append(data.Results, articleView{Article: a, Entry: entries[i]})
		}
	}

	c.HTML(http.StatusOK, "index.html", data)
}

func (s *Server) handleArticles(c *gin.Context) {
	r, err := filter.ParseRange(c.Query("from"), c.Query("to"), s.defaultRange(), s.opts.Earliest)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	matched := filter.Apply(s.opts.Articles, filter.Query{Range: r, Keywords: c.QueryArray("kw")})
	if matched == nil {
		matched = []news.Article{}
	}
	c.JSON(http.StatusOK, gin.H{"count": len(matched), "articles": matched})
}

type digestRequest struct {
	From     string   `json:"from"`
	To       string   `json:"to"`
	Keywords []string `json:"keywords"`
}

func (s *Server) handleDigest(c *gin.Context) {
	var req digestRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	r, err := filter.ParseRange(req.From, req.To, s.defaultRange(), s.opts.Earliest)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	matched := filter.Apply(s.opts.Articles, filter.Query{Range: r, Keywords: req.Keywords})
	entries := s.opts.Digest.Run(matched, nil)
	c.JSON(http.StatusOK, gin.H{"count": len(entries), "entries": entries})
}

func (s *Server) handleHealth(c *gin.Context) {
	resp := gin.H{"status": "ok", "articles": len(s.opts.Articles)}
	if s.opts.Store != nil {
		stats, err := s.opts.Store.Stats()
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"status": "error", "error": err.Error()})
			return
		}
		resp["summarized"] = stats.Summarized
	}
	c.JSON(http.StatusOK, resp)
}
