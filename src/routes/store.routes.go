package routes

import (
	"manajemen-toko/src/handlers"

	"github.com/gin-gonic/gin"
)

func RegisterStoreRoutes(r *gin.RouterGroup, handler *handlers.StoreHandler) {
	// Stores
	r.GET("", handler.ListStores)
	r.POST("", handler.CreateStore)
	r.GET("/:storeID", handler.GetStore)
	r.PUT("/:storeID", handler.UpdateStore)
	r.DELETE("/:storeID", handler.DeleteStore)

	// Master data
	r.POST("/:storeID/item-categories", handler.AddItemCategory)
	r.PUT("/:storeID/item-categories/:categoryID", handler.UpdateItemCategory)
	r.DELETE("/:storeID/item-categories/:categoryID", handler.DeleteItemCategory)
	r.POST("/:storeID/units", handler.AddUnit)
	r.PUT("/:storeID/units/:unitID", handler.UpdateUnit)
	r.DELETE("/:storeID/units/:unitID", handler.DeleteUnit)
	r.POST("/:storeID/asset-categories", handler.AddAssetCategory)
	r.PUT("/:storeID/asset-categories/:categoryID", handler.UpdateAssetCategory)
	r.DELETE("/:storeID/asset-categories/:categoryID", handler.DeleteAssetCategory)

	// Items and assets
	r.POST("/:storeID/items", handler.AddItem)
	r.PUT("/:storeID/items/:itemID", handler.UpdateItem)
	r.DELETE("/:storeID/items/:itemID", handler.DeleteItem)
	r.POST("/:storeID/items/:itemID/restock", handler.Restock)
	r.POST("/:storeID/assets", handler.AddAsset)
	r.PUT("/:storeID/assets/:assetID", handler.UpdateAsset)
	r.DELETE("/:storeID/assets/:assetID", handler.DeleteAsset)

	// Finance
	r.POST("/:storeID/costs", handler.AddCost)
	r.PUT("/:storeID/costs/:costID", handler.UpdateCost)
	r.DELETE("/:storeID/costs/:costID", handler.DeleteCost)
	r.POST("/:storeID/investors", handler.AddInvestor)
	r.PUT("/:storeID/investors/:investorID", handler.UpdateInvestor)
	r.DELETE("/:storeID/investors/:investorID", handler.DeleteInvestor)
	r.GET("/:storeID/cashflow", handler.ListCashFlow)
	r.POST("/:storeID/cashflow", handler.AddCashFlow)
	r.DELETE("/:storeID/cashflow/:entryID", handler.DeleteCashFlow)

	// Workbooks
	r.GET("/:storeID/export", handler.ExportWorkbook)
	r.POST("/:storeID/import", handler.ImportWorkbook)
}

func RegisterOpnameRoutes(r *gin.RouterGroup, handler *handlers.OpnameHandler) {
	r.GET("/:storeID/opname/sheet", handler.GetSheet)
	r.GET("/:storeID/opname/history", handler.GetHistory)
	r.GET("/:storeID/opname/form", handler.ExportForm)
	r.GET("/:storeID/opname/:sessionID", handler.GetReport)
	r.GET("/:storeID/opname/:sessionID/export", handler.ExportReport)

	r.POST("/:storeID/opname", handler.CompleteOpname)
	r.POST("/:storeID/opname/form", handler.ImportForm)
}

func RegisterReportRoutes(r *gin.RouterGroup, handler *handlers.ReportHandler) {
	r.GET("/:storeID/summary", handler.GetSummary)
	r.GET("/:storeID/cashflow/report", handler.GetMonthlyReport)
	r.GET("/:storeID/allocation", handler.GetAllocation)
	r.GET("/:storeID/items", handler.GetItems)
	r.GET("/:storeID/assets", handler.GetAssets)
}
