package domain

import "time"

// PlaylistSong 歌单-歌曲关联实体，(playlist, song)在业务层保证唯一
type PlaylistSong struct {
	ID         int64     `json:"id"`
	PlaylistID int64     `json:"playlist_id"`
	SongID     int64     `json:"song_id"`
	AddedAt    time.Time `json:"added_at"`
}
