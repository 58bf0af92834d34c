// Package parser turns raw chat messages into trade records. A message is
// processed line by line: noise is dropped, section headers update the running
// trade direction, and every remaining candidate line runs through the lexical
// extractors in a fixed order (price, enhancement, level, options, direction,
// name). A line that yields no price yields no record.
package parser

import (
	"regexp"
	"strings"

	"PriceSentinel/internal/extractor"
	"PriceSentinel/internal/model"
)

// Canonicalizer resolves a cleaned item phrase to its canonical name and
// screens it against the learned rejection set.
type Canonicalizer interface {
	Canonicalize(phrase string) string
	Rejected(canonical, raw string) bool
}

// Parser assembles trade records from chat messages.
type Parser struct {
	canon Canonicalizer
}

// New creates a Parser backed by the given canonicalizer.
func New(canon Canonicalizer) *Parser {
	return &Parser{canon: canon}
}

var (
	urlRe        = regexp.MustCompile(`https?://\S+`)
	spaceRe      = regexp.MustCompile(`\s+`)
	orSplitRe    = regexp.MustCompile(`(?i)\s+or\s+`)
	fillerRe     = regexp.MustCompile(`팝니다|삽니다|팜니다|판매합니다|구매합니다|구합니다|판매|구매|교환|팜|삽`)
	jamoPrefixRe = regexp.MustCompile(`^[ㅍㅅㅂ]+\s*`)
	decorRe      = regexp.MustCompile(`[•·\-★☆♧◆■□▪▫]+`)
	looseNumRe   = regexp.MustCompile(`\b\d{1,2}\b`)
)

// ParseMessage parses one full chat message into zero or more trade records.
// tradeDate must be a resolvable YYYY-MM-DD date; without one no records are
// created.
func (p *Parser) ParseMessage(rawMsg string, sender model.SenderInfo, tradeDate, messageTime string) []model.TradeRecord {
	if tradeDate == "" {
		return nil
	}

	var trades []model.TradeRecord
	var currentType model.TradeType

	for _, line := range strings.Split(rawMsg, "\n") {
		trimmed := strings.TrimSpace(line)
		if trimmed == "" {
			continue
		}

		if section, ok := DetectSectionHeader(trimmed); ok {
			currentType = section
			continue
		}

		// "A or B" lists several items at the same price point.
		for _, part := range orSplitRe.Split(trimmed, -1) {
			if rec, ok := p.parseTradeLine(strings.TrimSpace(part), currentType, sender, tradeDate, messageTime); ok {
				rec.RawMessage = rawMsg
				trades = append(trades, rec)
			}
		}
	}

	return trades
}

// parseTradeLine extracts a single trade record from one candidate line.
// Extraction is all-or-nothing: a failed step means no record, never a
// partial one.
func (p *Parser) parseTradeLine(line string, defaultType model.TradeType, sender model.SenderInfo, tradeDate, messageTime string) (model.TradeRecord, bool) {
	if ShouldSkipLine(line) {
		return model.TradeRecord{}, false
	}
	if _, ok := DetectSectionHeader(line); ok {
		return model.TradeRecord{}, false
	}

	trimmed := strings.TrimSpace(spaceRe.ReplaceAllString(urlRe.ReplaceAllString(line, ""), " "))
	if len([]rune(trimmed)) < 2 {
		return model.TradeRecord{}, false
	}

	price, remaining, ok := extractor.ExtractPrice(trimmed)
	if !ok {
		return model.TradeRecord{}, false
	}

	enhancement, remaining, _ := extractor.ExtractEnhancement(remaining)
	itemLevel, remaining, _ := extractor.ExtractItemLevel(remaining)
	options, remaining := extractor.ExtractOptions(remaining)

	tradeType := defaultType
	if inline, ok := extractor.DetectTradeType(trimmed); ok {
		tradeType = inline
	}
	if tradeType == "" {
		tradeType = model.TradeSell
	}

	itemName := cleanItemName(remaining)
	if itemName == "" {
		return model.TradeRecord{}, false
	}

	canonical := p.canon.Canonicalize(itemName)
	if p.canon.Rejected(canonical, itemName) {
		return model.TradeRecord{}, false
	}

	return model.TradeRecord{
		ItemName:      itemName,
		CanonicalName: canonical,
		Enhancement:   enhancement,
		ItemLevel:     itemLevel,
		Options:       options,
		TradeType:     tradeType,
		Price:         price.Price,
		PriceUnit:     price.Unit,
		PriceRaw:      price.Raw,
		SellerName:    sender.Name,
		Server:        sender.Server,
		TradeDate:     tradeDate,
		MessageTime:   messageTime,
		Source:        model.SourceRealtime,
	}, true
}

// cleanItemName strips filler verbs, abbreviation prefixes, decorative
// punctuation, and residual 1-2 digit leftovers from the post-extraction text.
func cleanItemName(text string) string {
	name := jamoPrefixRe.ReplaceAllString(strings.TrimSpace(text), "")
	name = fillerRe.ReplaceAllString(name, "")
	name = decorRe.ReplaceAllString(name, "")
	name = looseNumRe.ReplaceAllString(name, "")
	name = strings.TrimSpace(spaceRe.ReplaceAllString(name, " "))
	return name
}
