package localizer

import (
	"golang.org/x/text/language"
	"sort"
	"strings"
	"vincit.fi/asset-viewer/api"
	"vincit.fi/asset-viewer/common/logger"
)

// Album folder names are reported by the platform in English. Only
// Chinese gets translated names.
const translateLanguage = "zh"

var chineseAlbumNames = map[string]string{
	"Recent":             "最近项目",
	"Recents":            "最近项目",
	"Camera Roll":        "相机胶卷",
	"All Photos":         "所有照片",
	"Favorites":          "个人收藏",
	"Videos":             "视频",
	"Selfies":            "自拍",
	"Live Photos":        "实况照片",
	"Portrait":           "人像",
	"Panoramas":          "全景照片",
	"Time-lapse":         "延时摄影",
	"Slo-mo":             "慢动作",
	"Cinematic":          "电影效果",
	"Bursts":             "连拍快照",
	"Screenshots":        "截屏",
	"Screen Recordings":  "屏幕录制",
	"Animated":           "动图",
	"Long Exposure":      "长曝光",
	"RAW":                "RAW",
	"Hidden":             "已隐藏",
	"Recently Added":     "最近添加",
	"Recently Deleted":   "最近删除",
	"Imports":            "导入",
	"My Photo Stream":    "我的照片流",
	"Camera":             "相机",
	"Pictures":           "图片",
	"Download":           "下载",
	"Screenshot":         "截屏",
	"WeiXin":             "微信",
	"Duplicates":         "重复项目",
	"Spatial":            "空间",
	"Receipts":           "收据",
	"Handwriting":        "手写",
	"Illustrations":      "插图",
	"QR Codes":           "二维码",
	"Documents":          "文稿",
	"Shared Albums":      "共享相簿",
	"People":             "人物",
	"Places":             "地点",
	"Media Types":        "媒体类型",
	"Utilities":          "实用工具",
	"Pinned Collections": "精选集",
}

type Localizer struct {
	api.AlbumNameLocalizer
}

func NewLocalizer() *Localizer {
	return &Localizer{}
}

func (s *Localizer) Localize(folderName string, locale string) string {
	return Localize(folderName, locale)
}

// Localize returns the display name of an album folder. Unknown names
// and other languages keep the folder name.
func Localize(folderName string, locale string) string {
	if folderName == "" {
		return ""
	}
	if languageOf(locale) != translateLanguage {
		return folderName
	}
	if name, ok := chineseAlbumNames[folderName]; ok {
		return name
	}
	return folderName
}

// Names lists the folder names that have a translation.
func Names() []string {
	names := make([]string, 0, len(chineseAlbumNames))
	for name := range chineseAlbumNames {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// languageOf returns the lowercased text before the first separator.
// The subtag is compared as is, without canonicalization.
func languageOf(locale string) string {
	subtag := locale
	if i := strings.IndexAny(locale, "-_"); i >= 0 {
		subtag = locale[:i]
	}
	if _, err := language.ParseBase(subtag); err != nil && subtag != "" {
		logger.Trace.Printf("'%s' is not a language subtag of locale '%s'", subtag, locale)
	}
	return strings.ToLower(subtag)
}
