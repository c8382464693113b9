package main

import (
	"fmt"
	"log"
	"time"

	"gorm.io/gorm"

	"neurolink-speak/internal/helper"
	"neurolink-speak/internal/model"
)

var db *gorm.DB

const pollInterval = 10 * time.Minute

// notify emails one user about conversation log entries recorded since
// the last digest. The cursor lives on the user row so the log entries
// themselves stay untouched.
func notify(user *model.User) {
	var count int64
	db.Model(&model.ConversationLog{}).
		Where("user_id = ? AND created_at > ?", user.ID, user.DigestedAt).
		Count(&count)

	if count == 0 {
		return
	}

	log.Println("Sending digest to", user.Email)

	link := fmt.Sprintf("%s/conversation/history", helper.GetConfig("URL_BASE"))
	body := fmt.Sprintf("%d new conversation exchanges were recorded.<br/>\nTo review them, go to:<br/>\n<a href=\"%s\">%s</a>", count, link, link)

	if err := helper.SendEmail(user.Email, "Conversation Digest", body); err != nil {
		log.Println("Failed to send email", err)
		return
	}

	user.DigestedAt = time.Now()
	if err := db.Save(user).Error; err != nil {
		log.Println(fmt.Sprintf("Failed to update digest cursor for %s: %v", user.Username, err))
	} else {
		log.Println("Digest sent to", user.Email)
	}
}

func main() {
	helper.ConnectDB()
	db = helper.DB

	for {
		var users []model.User
		db.Where("status > 0").Find(&users)

		for u := range users {
			notify(&users[u])
		}

		time.Sleep(pollInterval)
	}
}
