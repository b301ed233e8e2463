// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package convert

import (
	"encoding/base64"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/avolkov/logmark/pkg/types"
)

// assetsDirName is the subdirectory, colocated with the output document,
// that receives decoded binary assets.
const assetsDirName = "assets"

// saveAsset decodes an embedded base64 payload and writes it under the
// assets directory next to the output document. It returns an Obsidian
// embed link to the written file, or a visible inline error block when
// decoding or writing fails. Assets are written as they are discovered;
// a later failure in the same conversion can leave them orphaned.
func (e *Extractor) saveAsset(data *types.InlineData) string {
	assetsDir := filepath.Join(filepath.Dir(e.docPath), assetsDirName)
	if err := os.MkdirAll(assetsDir, 0o755); err != nil {
		return fmt.Sprintf("[Error saving image: %v]", err)
	}

	payload, err := base64.StdEncoding.DecodeString(data.Data)
	if err != nil {
		return fmt.Sprintf("[Error saving image: %v]", err)
	}

	name := e.assetName(assetsDir, data.MimeType)
	if err := os.WriteFile(filepath.Join(assetsDir, name), payload, 0o644); err != nil {
		return fmt.Sprintf("[Error saving image: %v]", err)
	}
	return "![[" + name + "]]"
}

// assetName builds "<docstem>_img_<millis>.<ext>". When two assets in one
// conversion land on the same millisecond a sequence number is appended,
// so names stay unique within a run. Cross-run collisions remain possible
// and are not deduplicated.
func (e *Extractor) assetName(assetsDir, mimeType string) string {
	ext := mimeType
	if i := strings.LastIndex(mimeType, "/"); i >= 0 {
		ext = mimeType[i+1:]
	}
	stem := strings.TrimSuffix(filepath.Base(e.docPath), filepath.Ext(e.docPath))
	millis := e.now().UnixMilli()

	name := fmt.Sprintf("%s_img_%d.%s", stem, millis, ext)
	if _, err := os.Stat(filepath.Join(assetsDir, name)); err == nil {
		e.assetSeq++
		name = fmt.Sprintf("%s_img_%d_%d.%s", stem, millis, e.assetSeq, ext)
	}
	return name
}
