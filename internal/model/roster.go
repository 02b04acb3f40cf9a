package model

import (
	"fmt"
	"sort"
	"strings"
)

// RosterEntry 员工名册条目，来源为人事导出表
type RosterEntry struct {
	Email        string `json:"email"`
	Cat          string `json:"cat"`
	Division     string `json:"division"`
	Departamento string `json:"departamento"`
}

// Roster 员工名册：按邮箱去重、限定组织域名、按邮箱排序。
// 名册是全流程共享的只读输入；下游表格中的邮箱要么匹配名册，要么在打分前被剔除。
type Roster struct {
	entries []RosterEntry
	byEmail map[string]int
}

// PersonnelRow 人事导出表的原始行
type PersonnelRow struct {
	Email        string
	Cat          string
	Division     string
	Departamento string
}

// BuildRoster 从人事导出行构建名册
//
// 规则与清洗顺序：
//  1. 邮箱转小写；邮箱或类别为空的行丢弃
//  2. 仅保留域名部分与 mailDomain 完全一致的邮箱
//  3. 同一邮箱保留首次出现
//  4. 类别取前两个字符；不足两个字符视为格式错误，整次构建失败
//  5. 按邮箱排序
func BuildRoster(rows []PersonnelRow, mailDomain string) (*Roster, error) {
	r := &Roster{byEmail: make(map[string]int)}

	for i, row := range rows {
		email := strings.ToLower(strings.TrimSpace(row.Email))
		cat := strings.TrimSpace(row.Cat)
		if email == "" || cat == "" {
			continue
		}

		at := strings.LastIndex(email, "@")
		if at < 0 || email[at+1:] != mailDomain {
			continue
		}

		if len([]rune(cat)) < 2 {
			return nil, fmt.Errorf("row %d: malformed category %q for %s", i+1, cat, email)
		}
		cat = string([]rune(cat)[:2])

		if _, ok := r.byEmail[email]; ok {
			continue // 重复邮箱保留首次出现
		}
		r.byEmail[email] = len(r.entries)
		r.entries = append(r.entries, RosterEntry{
			Email:        email,
			Cat:          cat,
			Division:     strings.TrimSpace(row.Division),
			Departamento: strings.TrimSpace(row.Departamento),
		})
	}

	sort.Slice(r.entries, func(i, j int) bool {
		return r.entries[i].Email < r.entries[j].Email
	})
	for i, e := range r.entries {
		r.byEmail[e.Email] = i
	}

	return r, nil
}

// Len 名册人数
func (r *Roster) Len() int {
	return len(r.entries)
}

// Entries 全部条目（只读使用）
func (r *Roster) Entries() []RosterEntry {
	return r.entries
}

// Lookup 按邮箱查找条目
func (r *Roster) Lookup(email string) (RosterEntry, bool) {
	idx, ok := r.byEmail[email]
	if !ok {
		return RosterEntry{}, false
	}
	return r.entries[idx], true
}

// Contains 名册是否包含该邮箱
func (r *Roster) Contains(email string) bool {
	_, ok := r.byEmail[email]
	return ok
}
