package lecturekit

import "strings"

// ImageRule maps an image source path to its new location under images/.
//
// A plain rule matches the whole attribute value, so `src="From"` becomes
// `src="To"`. A prefix rule matches a folder prefix, so `src="From...`
// becomes `src="To...`.
type ImageRule struct {
	From   string `yaml:"from"`
	To     string `yaml:"to"`
	Prefix bool   `yaml:"prefix"`
}

// Validate returns an error if the rule cannot be applied.
func (r *ImageRule) Validate() error {
	if r.From == "" {
		return Errorf(EINVALID, "image rule source path required")
	}
	if r.To == "" {
		return Errorf(EINVALID, "image rule %q target path required", r.From)
	}
	return nil
}

// Old returns the literal text the rule searches for.
func (r *ImageRule) Old() string {
	if r.Prefix {
		return `src="` + r.From
	}
	return `src="` + r.From + `"`
}

// New returns the literal text the rule substitutes.
func (r *ImageRule) New() string {
	if r.Prefix {
		return `src="` + r.To
	}
	return `src="` + r.To + `"`
}

// Matches reports whether the rule would rewrite the given src value.
func (r *ImageRule) Matches(src string) bool {
	if r.Prefix {
		return strings.HasPrefix(src, r.From)
	}
	return src == r.From
}

// Rewrite returns src as the rule would rewrite it.
// It assumes Matches(src) is true.
func (r *ImageRule) Rewrite(src string) string {
	if r.Prefix {
		return r.To + strings.TrimPrefix(src, r.From)
	}
	return r.To
}

// DefaultImageRules returns the rewrite table for the AI ecosystem lecture:
// four images at the page root and six numbered folders under 图片/.
func DefaultImageRules() []ImageRule {
	return []ImageRule{
		{From: "2.语言理解与生成.jpeg", To: "images/2.语言理解与生成.jpeg"},
		{From: "3.图像理解与生成.png", To: "images/3.图像理解与生成.png"},
		{From: "4.音视频内容创作.png", To: "images/4.音视频内容创作.png"},
		{From: "5.数据与逻辑处理.jpeg", To: "images/5.数据与逻辑处理.jpeg"},
		{From: "图片/3.应用层/", To: "images/应用层/", Prefix: true},
		{From: "图片/4.图像创作工具/", To: "images/图像创作工具/", Prefix: true},
		{From: "图片/5.音视频生成工具/", To: "images/音视频生成工具/", Prefix: true},
		{From: "图片/6.编程类工具/", To: "images/编程类工具/", Prefix: true},
		{From: "图片/7.自动化类工具/", To: "images/自动化类工具/", Prefix: true},
		{From: "图片/8.文本创作类工具/", To: "images/文本创作类工具/", Prefix: true},
	}
}

// MatchImageRule returns the first rule in rules that rewrites src, or nil.
func MatchImageRule(rules []ImageRule, src string) *ImageRule {
	for i := range rules {
		if rules[i].Matches(src) {
			return &rules[i]
		}
	}
	return nil
}
