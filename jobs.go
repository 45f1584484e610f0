package main

import (
	"io"
	"log"
	"os"
	"path/filepath"
	"time"

	"github.com/tanjim-alam/homeline-admin-api/models"
	"gorm.io/gorm"
)

// recomputePartnerStats refreshes each partner's rolling delivery counters
// from the assignment table. Rating stays operator-maintained; only the
// delivered count is derived.
func recomputePartnerStats(db *gorm.DB) {
	var partners []models.DeliveryPartner
	if err := db.Find(&partners).Error; err != nil {
		log.Printf("❌ Failed to load partners for stats recompute: %v", err)
		return
	}

	for i := range partners {
		var delivered int64
		if err := db.Model(&models.DeliveryAssignment{}).
			Where("partner_id = ? AND delivery_status = ?", partners[i].ID, models.DeliveryStatusDelivered).
			Count(&delivered).Error; err != nil {
			log.Printf("❌ Failed to count deliveries for partner %d: %v", partners[i].ID, err)
			continue
		}
		if int(delivered) == partners[i].TotalDeliveries {
			continue
		}
		if err := db.Model(&models.DeliveryPartner{}).Where("id = ?", partners[i].ID).
			Update("total_deliveries", delivered).Error; err != nil {
			log.Printf("❌ Failed to update stats for partner %d: %v", partners[i].ID, err)
		}
	}
	log.Printf("✅ Partner stats recomputed for %d partners", len(partners))
}

// backupUploads copies the uploads directory into a timestamped folder next
// to it and prunes backups older than retention.
func backupUploads(srcDir string, retention time.Duration) {
	backupDir := srcDir + "-backup"
	timestamp := time.Now().Format("2006-01-02_15-04-05")
	destDir := filepath.Join(backupDir, timestamp)

	if err := copyDir(srcDir, destDir); err != nil {
		log.Printf("❌ Failed to back up uploads: %v", err)
	} else {
		log.Printf("✅ Uploads backed up to %s", destDir)
	}

	cleanupOldBackups(backupDir, retention)
}

// copyDir recursively copies a folder
func copyDir(src, dest string) error {
	entries, err := os.ReadDir(src)
	if err != nil {
		return err
	}
	if err := os.MkdirAll(dest, 0755); err != nil {
		return err
	}
	for _, entry := range entries {
		srcPath := filepath.Join(src, entry.Name())
		destPath := filepath.Join(dest, entry.Name())

		if entry.IsDir() {
			if err := copyDir(srcPath, destPath); err != nil {
				return err
			}
		} else {
			if err := copyFile(srcPath, destPath); err != nil {
				return err
			}
		}
	}
	return nil
}

// copyFile copies a single file
func copyFile(src, dest string) error {
	in, err := os.Open(src)
	if err != nil {
		return err
	}
	defer in.Close()

	out, err := os.Create(dest)
	if err != nil {
		return err
	}
	defer out.Close()

	if _, err = io.Copy(out, in); err != nil {
		return err
	}
	return out.Sync()
}

// cleanupOldBackups removes backup folders older than retention duration
func cleanupOldBackups(backupDir string, retention time.Duration) {
	entries, err := os.ReadDir(backupDir)
	if err != nil {
		log.Printf("❌ Failed to read backup directory: %v", err)
		return
	}

	cutoff := time.Now().Add(-retention)

	for _, entry := range entries {
		if !entry.IsDir() {
			continue
		}
		folderPath := filepath.Join(backupDir, entry.Name())
		info, err := os.Stat(folderPath)
		if err != nil {
			continue
		}
		if info.ModTime().Before(cutoff) {
			if err := os.RemoveAll(folderPath); err != nil {
				log.Printf("❌ Failed to remove old backup %s: %v", folderPath, err)
			} else {
				log.Printf("🗑️ Removed old backup: %s", folderPath)
			}
		}
	}
}
