package trade

import (
	"bufio"
	"context"
	"fmt"
	"log"
	"os"
	"regexp"
	"strconv"
	"strings"

	"PriceSentinel/internal/model"
	"PriceSentinel/internal/parser"
)

var (
	// "--------------- 2026년 8월 30일 토요일 ---------------"
	exportDateRe = regexp.MustCompile(`^-+\s*(\d{4})년\s*(\d{1,2})월\s*(\d{1,2})일`)
	// "[홍길동/80/세오] [오후 3:12] ㅍ나겔반지 30ㄱㅈ"
	exportMsgRe = regexp.MustCompile(`^\[([^\]]+)\]\s*\[([^\]]+)\]\s*(.*)$`)
)

// maxExportLine bounds a single export line; some clients emit very long
// pasted notices.
const maxExportLine = 1024 * 1024

// ImportKakaoExport replays a KakaoTalk chat-export text file through the
// realtime parsing pipeline. Lines before the first date header are ignored,
// lines without a message header continue the previous message, and records
// are flushed in batches. Cancellation between batches keeps what was already
// committed.
func (s *Service) ImportKakaoExport(ctx context.Context, path string) (model.ImportResult, error) {
	var result model.ImportResult

	f, err := os.Open(path)
	if err != nil {
		return result, fmt.Errorf("open export: %w", err)
	}
	defer f.Close()

	var (
		currentDate string
		sender      model.SenderInfo
		msgTime     string
		msgLines    []string
		pending     []model.TradeRecord
	)

	flushMessage := func() {
		if len(msgLines) == 0 {
			return
		}
		raw := strings.Join(msgLines, "\n")
		msgLines = nil
		result.MessagesParsed++
		trades := s.parser.ParseMessage(raw, sender, currentDate, msgTime)
		for i := range trades {
			trades[i].Source = model.SourceImport
		}
		pending = append(pending, trades...)
	}

	flushBatch := func() error {
		if len(pending) == 0 {
			return nil
		}
		if err := s.store.InsertTrades(pending); err != nil {
			return fmt.Errorf("insert batch: %w", err)
		}
		result.TradesInserted += len(pending)
		pending = pending[:0]
		return nil
	}

	scanner := bufio.NewScanner(f)
	scanner.Buffer(make([]byte, 64*1024), maxExportLine)

	for scanner.Scan() {
		line := scanner.Text()

		if m := exportDateRe.FindStringSubmatch(line); m != nil {
			flushMessage()
			year, _ := strconv.Atoi(m[1])
			month, _ := strconv.Atoi(m[2])
			day, _ := strconv.Atoi(m[3])
			currentDate = fmt.Sprintf("%04d-%02d-%02d", year, month, day)
			continue
		}
		if currentDate == "" {
			continue
		}

		if m := exportMsgRe.FindStringSubmatch(line); m != nil {
			flushMessage()
			sender = parser.ParseSender(m[1])
			msgTime = m[2]
			msgLines = append(msgLines, m[3])

			if len(pending) >= s.cfg.Import.BatchSize {
				if err := flushBatch(); err != nil {
					return result, err
				}
				if err := ctx.Err(); err != nil {
					log.Printf("[WARN] import cancelled after %d trades", result.TradesInserted)
					return result, err
				}
			}
			continue
		}

		// Continuation of a multi-line message.
		if len(msgLines) > 0 {
			msgLines = append(msgLines, line)
		}
	}
	if err := scanner.Err(); err != nil {
		return result, fmt.Errorf("read export: %w", err)
	}

	flushMessage()
	if err := flushBatch(); err != nil {
		return result, err
	}

	log.Printf("[INFO] import done: %d messages, %d trades from %s",
		result.MessagesParsed, result.TradesInserted, path)
	return result, nil
}
