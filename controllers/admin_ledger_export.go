package controllers

import (
	"bytes"
	"fmt"
	"net/http"
	"strconv"

	"github.com/Govind-619/BrewPoints/config"
	"github.com/Govind-619/BrewPoints/models"
	"github.com/Govind-619/BrewPoints/utils"
	"github.com/gin-gonic/gin"
	"github.com/tealeg/xlsx"
)

// ExportLedger streams the point ledger as an XLSX workbook, optionally
// filtered by user or source
func ExportLedger(c *gin.Context) {
	utils.LogInfo("ExportLedger called")

	query := config.DB.Model(&models.LedgerEntry{}).Order("created_at ASC")
	if userID := c.Query("user_id"); userID != "" {
		if _, err := strconv.Atoi(userID); err != nil {
			utils.BadRequest(c, "Invalid user_id", nil)
			return
		}
		query = query.Where("user_id = ?", userID)
	}
	if source := c.Query("source"); source != "" {
		query = query.Where("source = ?", source)
	}

	var entries []models.LedgerEntry
	if err := query.Find(&entries).Error; err != nil {
		utils.LogError("Failed to load ledger entries for export: %v", err)
		utils.InternalServerError(c, "Failed to export ledger", nil)
		return
	}

	file := xlsx.NewFile()
	sheet, err := file.AddSheet("Points Ledger")
	if err != nil {
		utils.LogError("Failed to create export sheet: %v", err)
		utils.InternalServerError(c, "Failed to export ledger", nil)
		return
	}

	header := sheet.AddRow()
	for _, title := range []string{"ID", "User ID", "Points", "Source", "Description", "Created At"} {
		cell := header.AddCell()
		cell.Value = title
		style := xlsx.NewStyle()
		font := xlsx.DefaultFont()
		font.Bold = true
		style.Font = *font
		cell.SetStyle(style)
	}

	for _, entry := range entries {
		row := sheet.AddRow()
		row.AddCell().SetInt(int(entry.ID))
		row.AddCell().SetInt(int(entry.UserID))
		row.AddCell().SetInt(entry.Points)
		row.AddCell().Value = entry.Source
		row.AddCell().Value = entry.Description
		row.AddCell().Value = entry.CreatedAt.Format("2006-01-02 15:04:05")
	}

	var buf bytes.Buffer
	if err := file.Write(&buf); err != nil {
		utils.LogError("Failed to write ledger export: %v", err)
		utils.InternalServerError(c, "Failed to export ledger", nil)
		return
	}

	utils.LogInfo("Exported %d ledger entries", len(entries))
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=points-ledger-%d.xlsx", len(entries)))
	c.Data(http.StatusOK, "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet", buf.Bytes())
}
