// Package session はユーザーセッション状態のインメモリ管理を提供する。
// セッションはカート内容・ログイン中会員・フラッシュメッセージを保持し、
// プロセス再起動で消える。永続化は行わない。
package session

import (
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/hitoshi/reji/internal/model"
)

// sweepInterval は期限切れセッションの掃除間隔。
const sweepInterval = 10 * time.Minute

// Session は1ユーザー分のセッション状態を保持する。
// リクエストは1セッションにつき逐次処理される前提であり、
// フィールドへのアクセスはセッション単位では同期化しない。
type Session struct {
	ID          string
	Cart        map[int]int    // 商品ID -> 数量。数量は常に正。
	Member      *model.Member  // ログイン中会員の値コピー。未ログイン時はnil。
	LastReceipt *model.Receipt // 直近に確定した取引のレシート。未購入時はnil。
	ExpiresAt   time.Time

	flashes []model.Flash
}

// AddFlash は次のページ描画時に表示する通知を追加する。
func (s *Session) AddFlash(level model.FlashLevel, message string) {
	s.flashes = append(s.flashes, model.Flash{Level: level, Message: message})
}

// PopFlashes は蓄積された通知を取り出して消去する。
func (s *Session) PopFlashes() []model.Flash {
	f := s.flashes
	s.flashes = nil
	return f
}

// Store はセッションをIDで管理するインメモリストア。
// ストア自体のマップ操作のみミューテックスで保護する。
type Store struct {
	mu       sync.RWMutex
	sessions map[string]*Session
	ttl      time.Duration
	stopCh   chan struct{}
}

// NewStore は新しいStoreを生成し、バックグラウンドで期限切れセッションの掃除を開始する。
func NewStore(ttl time.Duration) *Store {
	st := &Store{
		sessions: make(map[string]*Session),
		ttl:      ttl,
		stopCh:   make(chan struct{}),
	}

	go st.sweepLoop()

	return st
}

// Stop は掃除のバックグラウンドゴルーチンを停止する。
func (st *Store) Stop() {
	close(st.stopCh)
}

// Create は新しいセッションを生成して登録する。
func (st *Store) Create() *Session {
	s := &Session{
		ID:        uuid.NewString(),
		Cart:      make(map[int]int),
		ExpiresAt: time.Now().Add(st.ttl),
	}

	st.mu.Lock()
	st.sessions[s.ID] = s
	st.mu.Unlock()

	return s
}

// Get は指定IDのセッションを返す。存在しないか期限切れの場合はnilを返す。
func (st *Store) Get(id string) *Session {
	st.mu.RLock()
	s, ok := st.sessions[id]
	st.mu.RUnlock()

	if !ok {
		return nil
	}
	if time.Now().After(s.ExpiresAt) {
		st.mu.Lock()
		delete(st.sessions, id)
		st.mu.Unlock()
		return nil
	}
	return s
}

// Count は現在保持しているセッション数を返す。テストおよびメトリクス用。
func (st *Store) Count() int {
	st.mu.RLock()
	defer st.mu.RUnlock()
	return len(st.sessions)
}

// sweepLoop はバックグラウンドで期限切れセッションを定期的に削除する。
func (st *Store) sweepLoop() {
	ticker := time.NewTicker(sweepInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			st.sweep()
		case <-st.stopCh:
			return
		}
	}
}

// sweep は期限切れセッションを削除する。
func (st *Store) sweep() {
	now := time.Now()

	st.mu.Lock()
	for id, s := range st.sessions {
		if now.After(s.ExpiresAt) {
			delete(st.sessions, id)
		}
	}
	st.mu.Unlock()
}
