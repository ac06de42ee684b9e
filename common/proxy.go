package common

import (
  "context"
  "net"

  "h12.io/socks"
)

type ProxySession struct {
  Proxy string
}

// DialContext dials through the socks proxy, e.g. socks5://127.0.0.1:2080?timeout=30s.
func (s *ProxySession) DialContext(ctx context.Context, network, addr string) (net.Conn, error) {
  type result struct {
    conn net.Conn
    err  error
  }
  ch := make(chan result, 1)
  go func() {
    conn, err := socks.Dial(s.Proxy)(network, addr)
    ch <- result{conn, err}
  }()
  select {
  case <-ctx.Done():
    go func() {
      if r := <-ch; r.conn != nil {
        r.conn.Close()
      }
    }()
    return nil, ctx.Err()
  case r := <-ch:
    return r.conn, r.err
  }
}
