// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package archive

import (
	"encoding/xml"
	"strings"
)

// PageType enumerates the ComicRack/Kavita page-type vocabulary. Unknown
// values in the sidecar are preserved verbatim rather than rejected.
type PageType string

const (
	PageTypeFrontCover PageType = "FrontCover"
	PageTypeInnerCover PageType = "InnerCover"
	PageTypeRoundup    PageType = "Roundup"
	PageTypeStory      PageType = "Story"
	PageTypeAdvertisement PageType = "Advertisement"
	PageTypeEditorial  PageType = "Editorial"
	PageTypeBackCover  PageType = "BackCover"
	PageTypeOther      PageType = "Other"
	PageTypeDeleted    PageType = "Deleted"
)

// ComicInfoPage is one <Page> element of the sidecar's <Pages> list.
type ComicInfoPage struct {
	Image    int      `xml:"Image,attr"`
	Type     PageType `xml:"Type,attr"`
	Bookmark string   `xml:"Bookmark,attr"`
}

// ComicInfo is the ComicRack/Kavita-style metadata sidecar, deserialized
// from ComicInfo.xml.
type ComicInfo struct {
	XMLName         xml.Name        `xml:"ComicInfo"`
	Series          string          `xml:"Series"`
	LocalizedSeries string          `xml:"LocalizedSeries"`
	Volume          string          `xml:"Volume"`
	Number          string          `xml:"Number"`
	Title           string          `xml:"Title"`
	TitleSort       string          `xml:"TitleSort"`
	Format          string          `xml:"Format"`
	PageCount       int             `xml:"PageCount"`
	Pages           []ComicInfoPage `xml:"Pages>Page"`
}

// clean trims whitespace on every string field and normalizes the page
// type enumeration to its canonical casing, in place.
func (c *ComicInfo) clean() {
	c.Series = strings.TrimSpace(c.Series)
	c.LocalizedSeries = strings.TrimSpace(c.LocalizedSeries)
	c.Volume = strings.TrimSpace(c.Volume)
	c.Number = strings.TrimSpace(c.Number)
	c.Title = strings.TrimSpace(c.Title)
	c.TitleSort = strings.TrimSpace(c.TitleSort)
	c.Format = strings.TrimSpace(c.Format)
	for i := range c.Pages {
		c.Pages[i].Bookmark = strings.TrimSpace(c.Pages[i].Bookmark)
		c.Pages[i].Type = normalizePageType(c.Pages[i].Type)
	}
}

var pageTypeCanon = map[string]PageType{
	"frontcover":    PageTypeFrontCover,
	"innercover":    PageTypeInnerCover,
	"roundup":       PageTypeRoundup,
	"story":         PageTypeStory,
	"advertisement": PageTypeAdvertisement,
	"editorial":     PageTypeEditorial,
	"backcover":     PageTypeBackCover,
	"other":         PageTypeOther,
	"deleted":       PageTypeDeleted,
}

func normalizePageType(t PageType) PageType {
	trimmed := strings.TrimSpace(string(t))
	if canon, ok := pageTypeCanon[strings.ToLower(trimmed)]; ok {
		return canon
	}
	return PageType(trimmed)
}

// ParseComicInfo decodes raw ComicInfo.xml bytes into a ComicInfo record.
//
// Preprocessing strips every leaf element that is empty or
// whitespace-only, except <Page> elements — many real-world sidecars
// carry stray empty tags (e.g. an empty <Web></Web>) that would
// otherwise round-trip as a zero-value string field indistinguishable
// from "field genuinely absent"; that distinction does not matter here
// since ComicInfo has no pointer fields, but stripping keeps the decoded
// tree small and matches what ComicRack itself tolerates writing out.
// Malformed XML fails with KindMalformedSidecar; callers should treat
// that as "no sidecar" rather than aborting the surrounding operation.
func ParseComicInfo(raw []byte) (*ComicInfo, error) {
	root, err := parseXMLTree(raw)
	if err != nil {
		return nil, newError(KindMalformedSidecar, "parse ComicInfo.xml", err)
	}

	stripEmptyLeaves(root)

	cleaned, err := xml.Marshal(root)
	if err != nil {
		return nil, newError(KindMalformedSidecar, "re-marshal ComicInfo.xml tree", err)
	}

	var info ComicInfo
	if err := xml.Unmarshal(cleaned, &info); err != nil {
		return nil, newError(KindMalformedSidecar, "unmarshal ComicInfo.xml", err)
	}

	info.clean()
	return &info, nil
}

// xmlNode is a generic XML tree used only to preprocess the document
// before typed unmarshalling; encoding/xml has no native "delete empty
// leaves" primitive, so the tree is decoded once as xml.Name/Attr/Content
// generically via a self-referential struct.
type xmlNode struct {
	XMLName  xml.Name
	Attrs    []xml.Attr `xml:",any,attr"`
	Content  string     `xml:",chardata"`
	Children []xmlNode  `xml:",any"`
}

func parseXMLTree(raw []byte) (*xmlNode, error) {
	var root xmlNode
	if err := xml.Unmarshal(raw, &root); err != nil {
		return nil, err
	}
	return &root, nil
}

// stripEmptyLeaves removes children that have no sub-children, no
// attributes, and only whitespace character data — except nodes named
// "Page", which are meaningful even when empty (an empty <Page
// Image="3"/> still records that page's index).
func stripEmptyLeaves(node *xmlNode) {
	kept := node.Children[:0]
	for i := range node.Children {
		child := node.Children[i]
		stripEmptyLeaves(&child)
		if isEmptyLeaf(&child) {
			continue
		}
		kept = append(kept, child)
	}
	node.Children = kept
}

func isEmptyLeaf(node *xmlNode) bool {
	if node.XMLName.Local == "Page" {
		return false
	}
	if len(node.Children) > 0 || len(node.Attrs) > 0 {
		return false
	}
	return strings.TrimSpace(node.Content) == ""
}
