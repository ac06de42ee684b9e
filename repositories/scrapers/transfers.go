package scrapers

import (
  "context"
  "errors"

  "github.com/PuerkitoBio/goquery"
  "github.com/go-resty/resty/v2"
)

type TransfersRepository struct {
  Client *resty.Client
}

// Process lists the latest transfers; ranking is forwarded as the page filter when set.
func (r *TransfersRepository) Process(ctx context.Context, ranking string) (transfers []*TransferInfo, err error) {
  doc, err := fetchDocument(ctx, r.Client, "/transfers", map[string]string{
    "ranking": ranking,
  })
  if err != nil {
    return
  }

  container := doc.Find(".transfers-container")
  if container.Length() == 0 {
    err = errors.New("transfers container can not be found")
    return
  }

  transfers = []*TransferInfo{}
  container.Find(".transfer-row").Each(func(i int, s *goquery.Selection) {
    transfers = append(transfers, r.ExtractTransferInfo(s))
  })

  return
}

func (r *TransfersRepository) ExtractTransferInfo(s *goquery.Selection) *TransferInfo {
  logos := s.Find(".transfer-team-container .transfer-team-logo")
  transfer := &TransferInfo{
    Player:      text(s.Find(".transfer-player-name")),
    Description: text(s.Find(".transfer-movement")),
    From:        logos.Eq(0).AttrOr("title", ""),
    To:          logos.Eq(1).AttrOr("title", ""),
    Time:        unix(s.Find(".transfer-date"), "data-unix"),
  }
  if transfer.Player == "" {
    transfer.Player = text(s.Find(".transfer-movement a").First())
  }
  return transfer
}
