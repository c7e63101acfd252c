package config

// AzureCloudProvider stores article images in Azure Blob Storage
const AzureCloudProvider = "azure"

// SupabaseCloudProvider stores article images in a Supabase Storage bucket
const SupabaseCloudProvider = "supabase"

// LocalCloudProvider stores article images on the local disk and serves them under /uploads
const LocalCloudProvider = "local"
