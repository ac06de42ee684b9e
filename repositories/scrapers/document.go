package scrapers

import (
  "bytes"
  "context"
  "fmt"
  "net/http"
  "regexp"
  "strconv"
  "strings"

  "github.com/PuerkitoBio/goquery"
  "github.com/go-resty/resty/v2"
)

var (
  matchIDRegexp = regexp.MustCompile(`/matches/(\d+)/`)
  numberRegexp  = regexp.MustCompile(`\d+`)
)

func fetchDocument(
  ctx context.Context,
  client *resty.Client,
  path string,
  params map[string]string,
) (*goquery.Document, error) {
  req := client.R().SetContext(ctx)
  for key, val := range params {
    if val != "" {
      req.SetQueryParam(key, val)
    }
  }
  resp, err := req.Get(path)
  if err != nil {
    return nil, fmt.Errorf("request %s: %w", path, err)
  }
  if resp.StatusCode() != http.StatusOK {
    return nil, fmt.Errorf(
      "request error: path[%s] status[%s] code[%d]",
      path,
      resp.Status(),
      resp.StatusCode(),
    )
  }
  doc, err := goquery.NewDocumentFromReader(bytes.NewReader(resp.Body()))
  if err != nil {
    return nil, fmt.Errorf("parse %s: %w", path, err)
  }
  return doc, nil
}

func text(s *goquery.Selection) string {
  return strings.Join(strings.Fields(s.Text()), " ")
}

func unix(s *goquery.Selection, attr string) int64 {
  val, _ := strconv.ParseInt(s.AttrOr(attr, ""), 10, 64)
  return val
}

func matchID(url string) int64 {
  matches := matchIDRegexp.FindStringSubmatch(url)
  if len(matches) < 2 {
    return 0
  }
  id, _ := strconv.ParseInt(matches[1], 10, 64)
  return id
}

func number(s string) int {
  val, _ := strconv.Atoi(numberRegexp.FindString(s))
  return val
}
