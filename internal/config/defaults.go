package config

import "time"

const defaultOriginalURL = "https://www.google.com/search?lr=&cr=countryKR&sca_esv=f6d19e7077c59f8e" +
	"&tbs=ctr:countryKR&q=%EC%88%98%EC%9A%94%EA%B4%80%EB%A6%AC+OR+%EA%B7%B8%EB%A6%AC%EB%93%9C%EC%9C%84%EC%A6%88" +
	"+OR+DR+OR+%EC%A0%84%EB%A0%A5+OR+%ED%95%9C%EC%A0%84&tbm=nws&num=100"

var priorityDomains = []string{
	"etnews.com", "khan.co.kr", "electimes.com", "marketin.edaily.co.kr",
	"ekn.kr", "mk.co.kr", "energydaily.co.kr", "edaily.co.kr", "e2news.com",
}

var koreanDomains = []string{
	"naver.com", "daum.net", "nate.com", "chosun.com", "hani.co.kr", "khan.co.kr", "joins.com",
	"hankookilbo.com", "seoul.co.kr", "mk.co.kr", "yonhapnews.co.kr", "yna.co.kr", "news1.kr",
	"newspim.com", "nocutnews.co.kr", "ohmynews.com", "pressian.com", "newsis.com", "mbc.co.kr",
	"sbs.co.kr", "jtbc.co.kr", "kbs.co.kr", "edaily.co.kr", "etnews.com", "zdnet.co.kr", "asiatoday.co.kr",
	"kmib.co.kr", "munhwa.com", "hankyung.com", "isplus.com", "busan.com", "e2news.com", "electimes.com",
	"energydaily.co.kr", "ekn.kr",
}

func defaultPublishers() map[string]string {
	return map[string]string{
		"etnews.com": "전자신문", "khan.co.kr": "경향신문", "electimes.com": "전기신문",
		"marketin.edaily.co.kr": "이데일리 마켓인", "ekn.kr": "에너지경제", "mk.co.kr": "매일경제",
		"energydaily.co.kr": "에너지데일리", "edaily.co.kr": "이데일리", "e2news.com": "이투뉴스",
		"yonhapnews.co.kr": "연합뉴스", "yna.co.kr": "연합뉴스", "newsis.com": "뉴시스",
		"hankyung.com": "한국경제", "chosun.com": "조선일보", "hani.co.kr": "한겨레",
		"joins.com": "중앙일보", "hankookilbo.com": "한국일보", "seoul.co.kr": "서울신문",
		"kmib.co.kr": "국민일보", "munhwa.com": "문화일보", "ohmynews.com": "오마이뉴스",
		"pressian.com": "프레시안", "zdnet.co.kr": "지디넷코리아", "sbs.co.kr": "SBS",
		"mbc.co.kr": "MBC", "jtbc.co.kr": "JTBC", "kbs.co.kr": "KBS", "busan.com": "부산일보",
		"asiatoday.co.kr": "아시아투데이", "naver.com": "네이버뉴스", "daum.net": "다음뉴스",
		"news1.kr": "뉴스1", "sisajournal-e.com": "시사저널e", "tongilnews.com": "통일신문",
		"m-i.kr": "매일일보", "newsspirit.kr": "뉴스스피릿", "h2news.kr": "이투뉴스",
		"incheontoday.com": "인천투데이",
	}
}

func defaultConfig() Config {
	return Config{
		Logging: LoggingConfig{Level: "info"},
		Region:  RegionConfig{Timezone: defaultTimezone, location: loadLocation(defaultTimezone)},
		Search: SearchConfig{
			OriginalURL: defaultOriginalURL,
			ResultsURL:  "https://www.google.com/search",
			FeedURL:     "https://news.google.com/rss/search",
		},
		Terms: TermsConfig{
			Priority: []string{"아이디알서비스", "iDRS", "idrs", "그리드위즈", "전력수급기본계획", "분산에너지", "계통"},
			Weights: []TermWeight{
				{Term: "아이디알서비스", Weight: 3},
				{Term: "iDRS", Weight: 3},
				{Term: "idrs", Weight: 3},
				{Term: "그리드위즈", Weight: 2},
				{Term: "전력수급기본계획", Weight: 2},
				{Term: "분산에너지", Weight: 2},
				{Term: "계통", Weight: 1},
			},
			Excluded: []string{"배구", "학폭"},
		},
		Domains: DomainsConfig{
			Priority:   append([]string(nil), priorityDomains...),
			Korean:     append([]string(nil), koreanDomains...),
			Publishers: defaultPublishers(),
		},
		Run: RunConfig{PerDay: 5, Days: 7, CandidateCap: 40},
		HTTP: HTTPConfig{
			Timeout:     25 * time.Second,
			MaxAttempts: 4,
			BackoffStep: time.Second,
			UserAgents: []string{
				"Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/124.0 Safari/537.36",
				"Mozilla/5.0 (Macintosh; Intel Mac OS X 10_15_7) AppleWebKit/605.1.15 (KHTML, like Gecko) Version/17.1 Safari/605.1.15",
				"Mozilla/5.0 (X11; Linux x86_64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/123.0 Safari/537.36",
			},
			AcceptLanguage: "ko-KR,ko;q=0.9,en-US;q=0.8,en;q=0.7",
			BotCheckMarker: "https://www.google.com/sorry",
		},
		Output: OutputConfig{Dir: "./outputs", BaseName: ""},
		Report: ReportConfig{Sender: "아이디알서비스", Topic: "에너지 뉴스 모음"},
	}
}
