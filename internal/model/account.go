package model

// Username uses a binary collation so lookups and the unique index are case-sensitive.
type Account struct {
	ID           uint   `gorm:"primaryKey" json:"id"`
	Username     string `gorm:"type:varchar(64) COLLATE utf8mb4_bin;not null;uniqueIndex" json:"username"`
	PasswordHash string `gorm:"column:password_hash;size:255;not null" json:"-"`
}

func (Account) TableName() string {
	return "accounts"
}

// AccountView is the public shape of an account. It never carries the password hash.
type AccountView struct {
	ID       uint   `json:"id"`
	Username string `json:"username"`
}

func (a Account) View() AccountView {
	return AccountView{
		ID:       a.ID,
		Username: a.Username,
	}
}
