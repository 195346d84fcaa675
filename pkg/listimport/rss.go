package listimport

import (
	"context"
	"encoding/xml"
	"io"
	"net/http"
	"regexp"
	"strconv"
	"strings"

	curatordhttp "github.com/curatord/curatord/pkg/http"
	"github.com/curatord/curatord/pkg/logger"
	"go.uber.org/zap"
)

type rssFeed struct {
	Channel struct {
		Items []rssItem `xml:"item"`
	} `xml:"channel"`
}

type rssItem struct {
	Title string `xml:"title"`
	Link  string `xml:"link"`
	GUID  string `xml:"guid"`
}

// RawEntry is one feed item before TMDb resolution: a title plus any
// identifiers the feed already carried inline.
type RawEntry struct {
	Title  string
	IMDBID string
	TMDBID string
}

var (
	imdbPattern = regexp.MustCompile(`tt\d{7,8}`)
	tmdbPattern = regexp.MustCompile(`tmdb://(\d+)`)
	rankPrefix  = regexp.MustCompile(`^\s*\d+\.\s*`)
	yearSuffix  = regexp.MustCompile(`\s*\(\d{4}\)\s*$`)
)

// FetchRSS retrieves and parses an RSS-like feed's channel/item list,
// applying limit (head truncation) before any resolution happens.
// Network and XML errors yield an empty result: the reconciler never
// sees them.
func FetchRSS(ctx context.Context, client curatordhttp.HTTPClient, feedURL string, limit int) []RawEntry {
	log := logger.FromCtx(ctx)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, feedURL, nil)
	if err != nil {
		log.Debug("failed building rss request", zap.Error(err))
		return nil
	}

	res, err := client.Do(req)
	if err != nil {
		log.Debug("failed fetching rss feed", zap.String("url", feedURL), zap.Error(err))
		return nil
	}
	defer res.Body.Close()

	body, err := io.ReadAll(res.Body)
	if err != nil {
		log.Debug("failed reading rss feed body", zap.Error(err))
		return nil
	}

	var feed rssFeed
	if err := xml.Unmarshal(body, &feed); err != nil {
		log.Debug("failed parsing rss feed", zap.Error(err))
		return nil
	}

	items := feed.Channel.Items
	if limit > 0 && len(items) > limit {
		items = items[:limit]
	}

	entries := make([]RawEntry, 0, len(items))
	for _, item := range items {
		entries = append(entries, RawEntry{
			Title:  NormalizeTitle(item.Title),
			IMDBID: firstMatch(imdbPattern, item.GUID, item.Link),
			TMDBID: firstTMDBMatch(item.GUID, item.Link),
		})
	}

	return entries
}

// NormalizeTitle strips a leading "NN." rank prefix and a trailing
// "(YYYY)" year suffix before the title is used for a TMDb search.
func NormalizeTitle(title string) string {
	t := rankPrefix.ReplaceAllString(title, "")
	t = yearSuffix.ReplaceAllString(t, "")
	return strings.TrimSpace(t)
}

func firstMatch(re *regexp.Regexp, haystacks ...string) string {
	for _, h := range haystacks {
		if m := re.FindString(h); m != "" {
			return m
		}
	}
	return ""
}

func firstTMDBMatch(haystacks ...string) string {
	for _, h := range haystacks {
		if m := tmdbPattern.FindStringSubmatch(h); len(m) == 2 {
			return m[1]
		}
	}
	return ""
}

// seasonPattern detects a CJK ordinal season suffix like "第3季".
var seasonPattern = regexp.MustCompile(`第(\d+)季`)

// ExtractSeason reports the season number embedded in a series title via
// the "… 第X季" convention, if present.
func ExtractSeason(title string) (int, bool) {
	m := seasonPattern.FindStringSubmatch(title)
	if len(m) != 2 {
		return 0, false
	}
	n, err := strconv.Atoi(m[1])
	if err != nil {
		return 0, false
	}
	return n, true
}
