package common

import (
  "net"
  "net/http"
  "time"

  cloudflarebp "github.com/DaRealFreak/cloudflare-bp-go"
  "github.com/go-resty/resty/v2"

  "scraper.local/hltv-scraper/config"
)

func NewScraperClient() *resty.Client {
  tr := &http.Transport{
    DisableKeepAlives: true,
  }
  if proxy := GetEnvString("SCRAPER_PROXY"); proxy != "" {
    tr.DialContext = (&ProxySession{
      Proxy: proxy,
    }).DialContext
  } else {
    tr.DialContext = (&net.Dialer{}).DialContext
  }

  baseUrl := GetEnvString("SCRAPER_BASE_URL")
  if baseUrl == "" {
    baseUrl = config.SCRAPER_BASE_URL
  }
  agent := GetEnvString("SCRAPER_AGENT")
  if agent == "" {
    agent = config.SCRAPER_AGENT
  }

  client := resty.New()
  client.SetTransport(cloudflarebp.AddCloudFlareByPass(tr))
  client.SetBaseURL(baseUrl)
  client.SetHeader("User-Agent", agent)
  client.SetTimeout(time.Duration(30) * time.Second)
  return client
}
