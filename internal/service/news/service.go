// Package news supplies the daily briefing answered to the @新闻 command.
package news

// SenderName is the synthetic sender news replies are attributed to.
const SenderName = "新闻服务"

// Provider yields the briefing body. The chat hub takes the interface so a
// live news source can replace the canned default without touching the hub.
type Provider interface {
	Headlines() string
}

// StaticProvider serves a fixed briefing, the default behavior.
type StaticProvider struct{}

// Headlines returns the canned briefing text.
func (StaticProvider) Headlines() string {
	return "【今日要闻】\n" +
		"1. 科技行业迎来重大突破，人工智能技术取得新进展\n" +
		"2. 全球经济形势稳步回升，市场信心增强\n" +
		"3. 环保政策持续推进，绿色发展成为共识\n" +
		"4. 体育赛事精彩纷呈，各项记录被不断刷新"
}
