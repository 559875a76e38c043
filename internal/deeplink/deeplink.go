// Package deeplink 구버전 해시 라우트 파서.
// 예전 페이지가 쓰던 #/home, #/program/{id}?focus=items:budget&year=2022
// 형태의 북마크를 해석해 새 화면 좌표로 돌려준다.
package deeplink

import (
	"net/url"
	"strings"
)

// 페이지 종류
const (
	PageHome    = "home"
	PageProgram = "program"
)

// Route 해석된 라우트
type Route struct {
	Page      string `json:"page"`
	ProgramID string `json:"programId,omitempty"`
	Focus     string `json:"focus,omitempty"`
	Year      string `json:"year,omitempty"`
}

// Parse 해시 문자열 해석
// 비어 있거나 알 수 없는 형태는 홈으로 떨어진다.
// 프로그램 id 는 퍼센트 인코딩을 허용해 '/' 나 '?' 가 든 id 도 안전하게 다룬다.
func Parse(hash string) Route {
	home := Route{Page: PageHome}

	h := strings.TrimSpace(hash)
	h = strings.TrimPrefix(h, "#")
	h = strings.TrimPrefix(h, "/")
	if h == "" || h == PageHome {
		return home
	}

	// 쿼리 분리
	rawPath := h
	rawQuery := ""
	if i := strings.Index(h, "?"); i >= 0 {
		rawPath, rawQuery = h[:i], h[i+1:]
	}

	segs := strings.SplitN(rawPath, "/", 2)
	if segs[0] != PageProgram || len(segs) < 2 || segs[1] == "" {
		return home
	}

	id, err := url.PathUnescape(segs[1])
	if err != nil || id == "" {
		return home
	}

	r := Route{Page: PageProgram, ProgramID: id}
	if rawQuery != "" {
		q, err := url.ParseQuery(rawQuery)
		if err == nil {
			r.Focus = q.Get("focus")
			r.Year = q.Get("year")
		}
	}
	return r
}

// BuildProgram 프로그램 딥링크 생성 (id 는 퍼센트 인코딩)
func BuildProgram(programID, focus, year string) string {
	var b strings.Builder
	b.WriteString("#/program/")
	b.WriteString(url.PathEscape(programID))

	q := url.Values{}
	if focus != "" {
		q.Set("focus", focus)
	}
	if year != "" {
		q.Set("year", year)
	}
	if len(q) > 0 {
		b.WriteString("?")
		b.WriteString(q.Encode())
	}
	return b.String()
}
