package controllers

import (
	"context"
	"errors"
	"strings"
	"time"

	"sfa-app/config"
	"sfa-app/models"
	"sfa-app/repositories"
	"sfa-app/types"
	"sfa-app/utils"

	"github.com/gofiber/fiber/v2"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// Transaction bounds for one document submission.
const (
	txExecTimeout     = 45 * time.Second
	txLockWaitSeconds = 15
)

type VanInventoryController struct {
	DB *gorm.DB
}

func NewVanInventoryController(DB *gorm.DB) *VanInventoryController {
	return &VanInventoryController{DB: DB}
}

type VanInventoryItemPayload struct {
	ID             uint                       `json:"id"`
	ProductID      uint                       `json:"product_id"`
	Quantity       int                        `json:"quantity"`
	UnitPrice      decimal.Decimal            `json:"unit_price"`
	DiscountAmount decimal.Decimal            `json:"discount_amount"`
	TaxAmount      decimal.Decimal            `json:"tax_amount"`
	Notes          string                     `json:"notes"`
	BatchLotID     *uint                      `json:"batch_lot_id"`
	ProductBatches []repositories.BatchData   `json:"product_batches"`
	ProductSerials []repositories.SerialInput `json:"product_serials"`
}

type VanInventoryPayload struct {
	ID           types.SnowflakeID         `json:"id"`
	UserID       uint                      `json:"user_id"`
	VehicleID    *uint                     `json:"vehicle_id"`
	LocationID   *int                      `json:"location_id"`
	LocationType string                    `json:"location_type"`
	LoadingType  string                    `json:"loading_type"`
	Status       string                    `json:"status"`
	DocumentDate string                    `json:"document_date"`
	Remarks      string                    `json:"remarks"`
	Items        []VanInventoryItemPayload `json:"van_inventory_items"`
}

// Messages carrying these words are the caller's fault, everything else is ours.
var clientErrorKeywords = []string{
	"required", "not found", "Insufficient", "expired", "not active",
	"Invalid", "must be", "not associated", "already exists",
}

func isClientError(err error) bool {
	if err == nil {
		return false
	}
	msg := err.Error()
	for _, kw := range clientErrorKeywords {
		if strings.Contains(msg, kw) {
			return true
		}
	}
	return false
}

func respondError(ctx *fiber.Ctx, err error) error {
	status := fiber.StatusInternalServerError
	if isClientError(err) {
		status = fiber.StatusBadRequest
	}
	return ctx.Status(status).JSON(fiber.Map{
		"success": false,
		"message": err.Error(),
	})
}

// operatorID reads the authenticated user from the request context.
func operatorID(ctx *fiber.Ctx) int {
	if v, ok := ctx.Locals("userID").(float64); ok {
		return int(v)
	}
	return 0
}

// ledgerRefs is the uniform descriptor each tracking-type handler returns,
// consumed by the shared stock-update/movement step.
type ledgerRefs struct {
	batchID      *uint
	serialID     *uint
	stockApplied bool
}

// CreateOrUpdateVanInventory submits one van inventory document: header
// upsert, per-line ledger updates branched on tracking type, and strict
// replacement of the line set, all inside a single transaction.
func (c *VanInventoryController) CreateOrUpdateVanInventory(ctx *fiber.Ctx) error {
	var payload VanInventoryPayload
	if err := ctx.BodyParser(&payload); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"success": false,
			"message": "Invalid payload",
			"error":   err.Error(),
		})
	}

	operator := operatorID(ctx)

	tctx, cancel := context.WithTimeout(ctx.Context(), txExecTimeout)
	defer cancel()

	tx := c.DB.WithContext(tctx).Begin()
	if tx.Error != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"success": false,
			"message": "Failed to start transaction",
			"error":   tx.Error.Error(),
		})
	}
	defer func() {
		if r := recover(); r != nil {
			tx.Rollback()
		}
	}()
	setLockWaitTimeout(tx)

	doc, created, err := c.applyDocument(tx, &payload, operator)
	if err != nil {
		tx.Rollback()
		return respondError(ctx, err)
	}

	// Reload with relations while still inside the transaction
	response, err := c.serializeDocument(tx, doc)
	if err != nil {
		tx.Rollback()
		return respondError(ctx, err)
	}

	if err := tx.Commit().Error; err != nil {
		tx.Rollback()
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"success": false,
			"message": "Failed to commit transaction",
			"error":   err.Error(),
		})
	}

	if config.SMTPHost != "" && len(config.NotifyEmails) > 0 {
		go func(documentNo, loadingType string) {
			if err := utils.SendDocumentNotification(config.NotifyEmails, documentNo, loadingType); err != nil {
				config.Logger.Warn("document notification failed",
					zap.String("document_no", documentNo), zap.Error(err))
			}
		}(doc.DocumentNo, doc.LoadingType)
	}

	status := fiber.StatusOK
	message := "Van inventory updated successfully"
	if created {
		status = fiber.StatusCreated
		message = "Van inventory created successfully"
	}

	return ctx.Status(status).JSON(fiber.Map{
		"success": true,
		"message": message,
		"data":    response,
	})
}

// setLockWaitTimeout bounds how long the transaction waits on row locks.
func setLockWaitTimeout(tx *gorm.DB) {
	switch tx.Dialector.Name() {
	case "postgres":
		tx.Exec("SET LOCAL lock_timeout = '15s'")
	case "mysql":
		tx.Exec("SET innodb_lock_wait_timeout = ?", txLockWaitSeconds)
	}
}

func (c *VanInventoryController) applyDocument(tx *gorm.DB, payload *VanInventoryPayload, operator int) (*models.VanInventory, bool, error) {
	// Resolve: update mode only when the supplied id matches a document
	var doc models.VanInventory
	updateMode := false
	if payload.ID != 0 {
		err := tx.First(&doc, "id = ?", payload.ID).Error
		if err == nil {
			updateMode = true
		} else if !errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, false, err
		}
	}

	// Validate parties
	if payload.UserID == 0 {
		return nil, false, errors.New("User ID is required")
	}
	var user models.User
	if err := tx.First(&user, payload.UserID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, false, errors.New("User not found")
		}
		return nil, false, err
	}
	if payload.VehicleID != nil {
		var vehicle models.Vehicle
		if err := tx.First(&vehicle, *payload.VehicleID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil, false, errors.New("Vehicle not found")
			}
			return nil, false, err
		}
	}

	// Header defaults
	loadingType := payload.LoadingType
	if loadingType == "" {
		loadingType = repositories.LoadingTypeLoad
	}
	locationType := payload.LocationType
	if locationType == "" {
		locationType = "van"
	}
	status := payload.Status
	if status == "" {
		status = "A"
	}
	locationID := config.DefaultDepotID
	if payload.LocationID != nil && *payload.LocationID != 0 {
		locationID = *payload.LocationID
	}
	documentDate := time.Now()
	if payload.DocumentDate != "" {
		if parsed, err := parseDocumentDate(payload.DocumentDate); err == nil {
			documentDate = parsed
		}
	}

	vanRepo := repositories.NewVanInventoryRepository(tx)

	if updateMode {
		doc.UserID = payload.UserID
		doc.VehicleID = payload.VehicleID
		doc.LocationID = locationID
		doc.LocationType = locationType
		doc.LoadingType = loadingType
		doc.Status = status
		doc.DocumentDate = documentDate
		doc.Remarks = payload.Remarks
		doc.LogInst++
		doc.UpdatedBy = operator
		if err := tx.Save(&doc).Error; err != nil {
			return nil, false, err
		}
	} else {
		documentNo, err := vanRepo.GenerateDocumentNo()
		if err != nil {
			return nil, false, err
		}
		doc = models.VanInventory{
			DocumentNo:   documentNo,
			UserID:       payload.UserID,
			VehicleID:    payload.VehicleID,
			LocationID:   locationID,
			LocationType: locationType,
			LoadingType:  loadingType,
			Status:       status,
			DocumentDate: documentDate,
			IsActive:     "Y",
			LogInst:      1,
			Remarks:      payload.Remarks,
			CreatedBy:    operator,
			UpdatedBy:    operator,
		}
		if err := tx.Create(&doc).Error; err != nil {
			return nil, false, err
		}
	}

	// Process line items
	processedIDs := make([]uint, 0, len(payload.Items))
	for i := range payload.Items {
		itemID, err := c.processLineItem(tx, &doc, &payload.Items[i], operator)
		if err != nil {
			return nil, false, err
		}
		processedIDs = append(processedIDs, itemID)
	}

	// Reconcile: the submitted set replaces whatever the document had
	if updateMode {
		query := tx.Where("van_inventory_id = ?", doc.ID)
		if len(processedIDs) > 0 {
			query = query.Where("id NOT IN ?", processedIDs)
		}
		if err := query.Unscoped().Delete(&models.VanInventoryItem{}).Error; err != nil {
			return nil, false, err
		}
	}

	return &doc, !updateMode, nil
}

func (c *VanInventoryController) processLineItem(tx *gorm.DB, doc *models.VanInventory, item *VanInventoryItemPayload, operator int) (uint, error) {
	if item.Quantity <= 0 {
		return 0, errors.New("Quantity must be a positive number")
	}
	if item.ProductID == 0 {
		return 0, errors.New("Product ID is required for all items")
	}

	var product models.Product
	if err := tx.First(&product, item.ProductID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return 0, errors.New("Product not found")
		}
		return 0, err
	}

	var (
		refs ledgerRefs
		err  error
	)
	switch product.TrackingType {
	case models.TrackingBatch:
		refs, err = c.processBatchItem(tx, doc, item, &product, operator)
	case models.TrackingSerial:
		refs, err = c.processSerialItem(tx, doc, item, &product, operator)
	default:
		refs = ledgerRefs{}
	}
	if err != nil {
		return 0, err
	}

	stockRepo := repositories.NewStockRepository(tx)
	if !refs.stockApplied {
		if err := stockRepo.UpdateInventoryStock(product.ID, doc.LocationID, item.Quantity,
			doc.LoadingType, refs.batchID, nil, operator); err != nil {
			return 0, err
		}
		if err := stockRepo.CreateStockMovement(newMovement(doc, product.ID, refs.batchID, nil, item.Quantity, operator)); err != nil {
			return 0, err
		}
		if product.TrackingType == models.TrackingBatch {
			// The legacy system records the batch movement twice per line.
			// Kept so replicated audit trails stay comparable.
			if err := stockRepo.CreateStockMovement(newMovement(doc, product.ID, refs.batchID, nil, item.Quantity, operator)); err != nil {
				return 0, err
			}
		}
	}

	return c.upsertLineItem(tx, doc, item, refs.batchID, operator)
}

func (c *VanInventoryController) processBatchItem(tx *gorm.DB, doc *models.VanInventory, item *VanInventoryItemPayload, product *models.Product, operator int) (ledgerRefs, error) {
	batchRepo := repositories.NewBatchRepository(tx)

	var batchLotID uint
	switch doc.LoadingType {
	case repositories.LoadingTypeLoad:
		var batchData *repositories.BatchData
		if len(item.ProductBatches) > 0 {
			batchData = &item.ProductBatches[0]
		}
		lot, err := batchRepo.CreateOrGetBatchForProduct(product.ID, operator, batchData)
		if err != nil {
			return ledgerRefs{}, err
		}
		batchLotID = lot.ID
	case repositories.LoadingTypeUnload:
		if item.BatchLotID == nil || *item.BatchLotID == 0 {
			return ledgerRefs{}, errors.New("Batch lot ID is required for unload items")
		}
		batchLotID = *item.BatchLotID
	default:
		return ledgerRefs{}, errors.New("Invalid loading type: " + doc.LoadingType)
	}

	if err := batchRepo.UpdateBatchLotQuantity(batchLotID, item.Quantity, doc.LoadingType); err != nil {
		return ledgerRefs{}, err
	}
	if err := batchRepo.UpdateProductBatchQuantity(product.ID, batchLotID, item.Quantity, doc.LoadingType); err != nil {
		return ledgerRefs{}, err
	}

	return ledgerRefs{batchID: &batchLotID}, nil
}

func (c *VanInventoryController) processSerialItem(tx *gorm.DB, doc *models.VanInventory, item *VanInventoryItemPayload, product *models.Product, operator int) (ledgerRefs, error) {
	if len(item.ProductSerials) != item.Quantity {
		return ledgerRefs{}, errors.New("Number of serial numbers must be equal to quantity")
	}

	serialRepo := repositories.NewSerialRepository(tx)
	stockRepo := repositories.NewStockRepository(tx)

	refs := ledgerRefs{stockApplied: true}
	for _, input := range item.ProductSerials {
		serial, err := serialRepo.CreateOrUpdateSerialNumber(product.ID, input, nil,
			doc.LocationID, doc.LoadingType, operator)
		if err != nil {
			return ledgerRefs{}, err
		}
		serialID := serial.ID
		if err := stockRepo.UpdateInventoryStock(product.ID, doc.LocationID, 1,
			doc.LoadingType, nil, &serialID, operator); err != nil {
			return ledgerRefs{}, err
		}
		if err := stockRepo.CreateStockMovement(newMovement(doc, product.ID, nil, &serialID, 1, operator)); err != nil {
			return ledgerRefs{}, err
		}
		refs.serialID = &serialID
	}

	return refs, nil
}

func newMovement(doc *models.VanInventory, productID uint, batchID *uint, serialID *uint, quantity int, operator int) *models.StockMovement {
	movementType := "load"
	var fromLocation, toLocation *int
	locationID := doc.LocationID
	if doc.LoadingType == repositories.LoadingTypeUnload {
		movementType = "unload"
		toLocation = &locationID
	} else {
		fromLocation = &locationID
	}

	return &models.StockMovement{
		ProductID:      productID,
		BatchID:        batchID,
		SerialID:       serialID,
		MovementType:   movementType,
		ReferenceType:  repositories.ReferenceTypeVanInventory,
		ReferenceID:    int64(doc.ID),
		FromLocationID: fromLocation,
		ToLocationID:   toLocation,
		Quantity:       quantity,
		MovementDate:   time.Now(),
		CreatedBy:      operator,
	}
}

func (c *VanInventoryController) upsertLineItem(tx *gorm.DB, doc *models.VanInventory, item *VanInventoryItemPayload, batchID *uint, operator int) (uint, error) {
	total := decimal.NewFromInt(int64(item.Quantity)).Mul(item.UnitPrice).
		Sub(item.DiscountAmount).Add(item.TaxAmount)

	if item.ID > 0 {
		var existing models.VanInventoryItem
		err := tx.First(&existing, "id = ? AND van_inventory_id = ?", item.ID, doc.ID).Error
		if err == nil {
			existing.ProductID = item.ProductID
			existing.Quantity = item.Quantity
			existing.UnitPrice = item.UnitPrice
			existing.DiscountAmount = item.DiscountAmount
			existing.TaxAmount = item.TaxAmount
			existing.TotalAmount = total
			existing.BatchLotID = batchID
			existing.Notes = item.Notes
			existing.UpdatedBy = operator
			if err := tx.Save(&existing).Error; err != nil {
				return 0, err
			}
			return existing.ID, nil
		}
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			return 0, err
		}
	}

	row := models.VanInventoryItem{
		VanInventoryID: doc.ID,
		ProductID:      item.ProductID,
		Quantity:       item.Quantity,
		UnitPrice:      item.UnitPrice,
		DiscountAmount: item.DiscountAmount,
		TaxAmount:      item.TaxAmount,
		TotalAmount:    total,
		BatchLotID:     batchID,
		Notes:          item.Notes,
		CreatedBy:      operator,
		UpdatedBy:      operator,
	}
	if err := tx.Create(&row).Error; err != nil {
		return 0, err
	}
	return row.ID, nil
}

func parseDocumentDate(value string) (time.Time, error) {
	for _, layout := range []string{time.RFC3339, "2006-01-02 15:04:05", "2006-01-02"} {
		if parsed, err := time.Parse(layout, value); err == nil {
			return parsed, nil
		}
	}
	return time.Time{}, errors.New("unrecognized date format")
}

func (c *VanInventoryController) serializeDocument(db *gorm.DB, doc *models.VanInventory) (fiber.Map, error) {
	vanRepo := repositories.NewVanInventoryRepository(db)
	full, err := vanRepo.GetByIDWithRelations(doc.ID)
	if err != nil {
		return nil, err
	}

	items := make([]fiber.Map, 0, len(full.Items))
	for _, item := range full.Items {
		entry := fiber.Map{
			"id":              item.ID,
			"product_id":      item.ProductID,
			"quantity":        item.Quantity,
			"unit_price":      item.UnitPrice,
			"discount_amount": item.DiscountAmount,
			"tax_amount":      item.TaxAmount,
			"total_amount":    item.TotalAmount,
			"notes":           item.Notes,
		}
		if item.Product != nil {
			entry["item_code"] = item.Product.ItemCode
			entry["item_name"] = item.Product.ItemName
			entry["tracking_type"] = item.Product.TrackingType
			entry["uom"] = item.Product.Uom
		}
		if item.BatchLot != nil {
			entry["batch_lot_id"] = item.BatchLot.ID
			entry["batch_number"] = item.BatchLot.BatchNumber
			entry["lot_number"] = item.BatchLot.LotNumber
			entry["expiry_date"] = item.BatchLot.ExpiryDate
		}
		if item.Product != nil && item.Product.TrackingType == models.TrackingSerial {
			serials, err := vanRepo.SerialsForDocument(full.ID, item.ProductID)
			if err != nil {
				return nil, err
			}
			serialNos := make([]string, 0, len(serials))
			for _, s := range serials {
				serialNos = append(serialNos, s.SerialNo)
			}
			entry["serial_numbers"] = serialNos
		}
		items = append(items, entry)
	}

	response := fiber.Map{
		"id":            full.ID,
		"document_no":   full.DocumentNo,
		"user_id":       full.UserID,
		"vehicle_id":    full.VehicleID,
		"location_id":   full.LocationID,
		"location_type": full.LocationType,
		"loading_type":  full.LoadingType,
		"status":        full.Status,
		"document_date": full.DocumentDate,
		"log_inst":      full.LogInst,
		"remarks":       full.Remarks,
		"items":         items,
	}
	if full.User != nil {
		response["user_name"] = full.User.Name
	}
	if full.Vehicle != nil {
		response["vehicle_code"] = full.Vehicle.VehicleCode
		response["plate_number"] = full.Vehicle.PlateNumber
	}

	return response, nil
}

func (c *VanInventoryController) GetVanInventoryByID(ctx *fiber.Ctx) error {
	var id types.SnowflakeID
	if err := id.UnmarshalJSON([]byte(`"` + ctx.Params("id") + `"`)); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid ID"})
	}

	var doc models.VanInventory
	if err := c.DB.First(&doc, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ctx.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Van inventory not found"})
		}
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	response, err := c.serializeDocument(c.DB, &doc)
	if err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	return ctx.Status(fiber.StatusOK).JSON(fiber.Map{"success": true, "data": response})
}

func (c *VanInventoryController) GetAllVanInventories(ctx *fiber.Ctx) error {
	page := ctx.QueryInt("page", 1)
	limit := ctx.QueryInt("limit", 10)
	if page < 1 {
		page = 1
	}
	if limit < 1 || limit > 100 {
		limit = 10
	}

	query := c.DB.Model(&models.VanInventory{})
	if search := ctx.Query("search"); search != "" {
		query = query.Where("document_no LIKE ?", "%"+search+"%")
	}
	if status := ctx.Query("status"); status != "" {
		query = query.Where("status = ?", status)
	}
	if userID := ctx.QueryInt("user_id", 0); userID > 0 {
		query = query.Where("user_id = ?", userID)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	var docs []models.VanInventory
	err := query.Preload("User").Preload("Vehicle").Preload("Items").
		Order("document_no desc").
		Offset((page - 1) * limit).Limit(limit).
		Find(&docs).Error
	if err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	return ctx.Status(fiber.StatusOK).JSON(fiber.Map{
		"success": true,
		"data":    docs,
		"meta": fiber.Map{
			"page":  page,
			"limit": limit,
			"total": total,
		},
	})
}

// UpdateVanInventoryHeader partially updates header columns only. Line
// items and ledgers are untouched; resubmit the full document for those.
func (c *VanInventoryController) UpdateVanInventoryHeader(ctx *fiber.Ctx) error {
	var id types.SnowflakeID
	if err := id.UnmarshalJSON([]byte(`"` + ctx.Params("id") + `"`)); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid ID"})
	}

	var doc models.VanInventory
	if err := c.DB.First(&doc, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ctx.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Van inventory not found"})
		}
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	var payload VanInventoryPayload
	if err := ctx.BodyParser(&payload); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	if payload.Status != "" {
		doc.Status = payload.Status
	}
	if payload.LoadingType != "" {
		doc.LoadingType = payload.LoadingType
	}
	if payload.LocationType != "" {
		doc.LocationType = payload.LocationType
	}
	if payload.LocationID != nil {
		doc.LocationID = *payload.LocationID
	}
	if payload.VehicleID != nil {
		doc.VehicleID = payload.VehicleID
	}
	if payload.Remarks != "" {
		doc.Remarks = payload.Remarks
	}
	if payload.DocumentDate != "" {
		if parsed, err := parseDocumentDate(payload.DocumentDate); err == nil {
			doc.DocumentDate = parsed
		}
	}
	doc.LogInst++
	doc.UpdatedBy = operatorID(ctx)

	if err := c.DB.Save(&doc).Error; err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	return ctx.Status(fiber.StatusOK).JSON(fiber.Map{"success": true, "message": "Van inventory updated", "data": doc})
}

// DeleteVanInventory removes a document. Batch quantities applied by the
// document are compensated best-effort before the rows go away.
func (c *VanInventoryController) DeleteVanInventory(ctx *fiber.Ctx) error {
	var id types.SnowflakeID
	if err := id.UnmarshalJSON([]byte(`"` + ctx.Params("id") + `"`)); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid ID"})
	}

	var doc models.VanInventory
	if err := c.DB.Preload("Items").First(&doc, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ctx.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Van inventory not found"})
		}
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	tx := c.DB.Begin()
	defer func() {
		if r := recover(); r != nil {
			tx.Rollback()
		}
	}()

	batchRepo := repositories.NewBatchRepository(tx)
	for _, item := range doc.Items {
		if item.BatchLotID == nil {
			continue
		}
		if err := batchRepo.ReverseBatchLotQuantity(*item.BatchLotID, item.Quantity, doc.LoadingType); err != nil {
			tx.Rollback()
			return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
		}
		if err := batchRepo.ReverseProductBatchQuantity(item.ProductID, *item.BatchLotID, item.Quantity, doc.LoadingType); err != nil {
			tx.Rollback()
			return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
		}
	}

	if err := tx.Unscoped().Where("van_inventory_id = ?", doc.ID).Delete(&models.VanInventoryItem{}).Error; err != nil {
		tx.Rollback()
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}
	if err := tx.Unscoped().Delete(&doc).Error; err != nil {
		tx.Rollback()
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	if err := tx.Commit().Error; err != nil {
		tx.Rollback()
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	return ctx.Status(fiber.StatusOK).JSON(fiber.Map{"success": true, "message": "Van inventory deleted successfully"})
}
