package rv32m1

import (
	"unsafe"

	"omibyte.io/vega/irq"
	"omibyte.io/vega/periph"
)

// Peripheral base addresses.
const (
	FTFE_FlashConfig_BASE = 0x00000400
	MSCM_BASE             = 0x40001000
	SEMA420_BASE          = 0x4001B000
	SMC0_BASE             = 0x40020000
	FTFE_BASE             = 0x40023000
	LLWU0_BASE            = 0x40024000
	SIM_BASE              = 0x40026000
	SPM_BASE              = 0x40028000
	TRGMUX0_BASE          = 0x40029000
	WDOG0_BASE            = 0x4002A000
	PCC0_BASE             = 0x4002B000
	SCG_BASE              = 0x4002C000
	CRC0_BASE             = 0x4002F000
	LPIT0_BASE            = 0x40030000
	RTC_BASE              = 0x40031000
	LPTMR0_BASE           = 0x40032000
	LPTMR1_BASE           = 0x40033000
	TPM0_BASE             = 0x40035000
	TPM1_BASE             = 0x40036000
	TPM2_BASE             = 0x40037000
	EMVSIM0_BASE          = 0x40038000
	FLEXIO0_BASE          = 0x40039000
	LPI2C0_BASE           = 0x4003A000
	LPI2C1_BASE           = 0x4003B000
	LPI2C2_BASE           = 0x4003C000
	I2S0_BASE             = 0x4003D000
	USDHC0_BASE           = 0x4003E000
	LPSPI0_BASE           = 0x4003F000
	LPSPI1_BASE           = 0x40040000
	LPSPI2_BASE           = 0x40041000
	LPUART0_BASE          = 0x40042000
	LPUART1_BASE          = 0x40043000
	LPUART2_BASE          = 0x40044000
	USB0_BASE             = 0x40045000
	PORTA_BASE            = 0x40046000
	PORTB_BASE            = 0x40047000
	PORTC_BASE            = 0x40048000
	PORTD_BASE            = 0x40049000
	LPADC0_BASE           = 0x4004A000
	LPCMP0_BASE           = 0x4004B000
	LPDAC0_BASE           = 0x4004C000
	VREF_BASE             = 0x4004D000
	DMA1_BASE             = 0x41008000
	GPIOE_BASE            = 0x4100F000
	SEMA421_BASE          = 0x4101B000
	CMC1_BASE             = 0x4101C000
	SMC1_BASE             = 0x41020000
	DMAMUX1_BASE          = 0x41021000
	INTMUX1_BASE          = 0x41022000
	LLWU1_BASE            = 0x41023000
	MUB_BASE              = 0x41024000
	TRGMUX1_BASE          = 0x41025000
	WDOG1_BASE            = 0x41026000
	PCC1_BASE             = 0x41027000
	CAU3_BASE             = 0x41028000
	TRNG_BASE             = 0x41029000
	LPIT1_BASE            = 0x4102A000
	LPTMR2_BASE           = 0x4102B000
	TSTMRB_BASE           = 0x4102C000
	TPM3_BASE             = 0x4102D000
	LPI2C3_BASE           = 0x4102E000
	LPSPI3_BASE           = 0x4102F000
	RSIM_BASE             = 0x41031000
	EWM_BASE              = 0x41034000
	LPUART3_BASE          = 0x41036000
	PORTE_BASE            = 0x41037000
	LPCMP1_BASE           = 0x41038000
	GPIOA_BASE            = 0x48020000
	GPIOB_BASE            = 0x48020040
	GPIOC_BASE            = 0x48020080
	GPIOD_BASE            = 0x480200C0
	EVENT_BASE            = 0xE0041000
	FGPIOE_BASE           = 0xF8000000
)

var (
	DMA1             = (*DMA_TYPE)(unsafe.Pointer(uintptr(DMA1_BASE)))
	DMAMUX1          = (*DMAMUX_TYPE)(unsafe.Pointer(uintptr(DMAMUX1_BASE)))
	INTMUX1          = (*INTMUX_TYPE)(unsafe.Pointer(uintptr(INTMUX1_BASE)))
	SEMA420          = (*SEMA42_TYPE)(unsafe.Pointer(uintptr(SEMA420_BASE)))
	SEMA421          = (*SEMA42_TYPE)(unsafe.Pointer(uintptr(SEMA421_BASE)))
	FTFE             = (*FTFE_TYPE)(unsafe.Pointer(uintptr(FTFE_BASE)))
	FTFE_FlashConfig = (*NV_TYPE)(unsafe.Pointer(uintptr(FTFE_FlashConfig_BASE)))
	SMC0             = (*SMC_TYPE)(unsafe.Pointer(uintptr(SMC0_BASE)))
	SMC1             = (*SMC_TYPE)(unsafe.Pointer(uintptr(SMC1_BASE)))
	PCC0             = (*PCC_TYPE)(unsafe.Pointer(uintptr(PCC0_BASE)))
	PCC1             = (*PCC_TYPE)(unsafe.Pointer(uintptr(PCC1_BASE)))
	WDOG0            = (*WDOG_TYPE)(unsafe.Pointer(uintptr(WDOG0_BASE)))
	WDOG1            = (*WDOG_TYPE)(unsafe.Pointer(uintptr(WDOG1_BASE)))
	CRC0             = (*CRC_TYPE)(unsafe.Pointer(uintptr(CRC0_BASE)))
	LPIT0            = (*LPIT_TYPE)(unsafe.Pointer(uintptr(LPIT0_BASE)))
	LPIT1            = (*LPIT_TYPE)(unsafe.Pointer(uintptr(LPIT1_BASE)))
	RTC              = (*RTC_TYPE)(unsafe.Pointer(uintptr(RTC_BASE)))
	LPTMR0           = (*LPTMR_TYPE)(unsafe.Pointer(uintptr(LPTMR0_BASE)))
	LPTMR1           = (*LPTMR_TYPE)(unsafe.Pointer(uintptr(LPTMR1_BASE)))
	LPTMR2           = (*LPTMR_TYPE)(unsafe.Pointer(uintptr(LPTMR2_BASE)))
	TSTMRB           = (*TSTMR_TYPE)(unsafe.Pointer(uintptr(TSTMRB_BASE)))
	TPM0             = (*TPM_TYPE)(unsafe.Pointer(uintptr(TPM0_BASE)))
	TPM1             = (*TPM_TYPE)(unsafe.Pointer(uintptr(TPM1_BASE)))
	TPM2             = (*TPM_TYPE)(unsafe.Pointer(uintptr(TPM2_BASE)))
	TPM3             = (*TPM_TYPE)(unsafe.Pointer(uintptr(TPM3_BASE)))
	LPI2C0           = (*LPI2C_TYPE)(unsafe.Pointer(uintptr(LPI2C0_BASE)))
	LPI2C1           = (*LPI2C_TYPE)(unsafe.Pointer(uintptr(LPI2C1_BASE)))
	LPI2C2           = (*LPI2C_TYPE)(unsafe.Pointer(uintptr(LPI2C2_BASE)))
	LPI2C3           = (*LPI2C_TYPE)(unsafe.Pointer(uintptr(LPI2C3_BASE)))
	LPSPI0           = (*LPSPI_TYPE)(unsafe.Pointer(uintptr(LPSPI0_BASE)))
	LPSPI1           = (*LPSPI_TYPE)(unsafe.Pointer(uintptr(LPSPI1_BASE)))
	LPSPI2           = (*LPSPI_TYPE)(unsafe.Pointer(uintptr(LPSPI2_BASE)))
	LPSPI3           = (*LPSPI_TYPE)(unsafe.Pointer(uintptr(LPSPI3_BASE)))
	LPUART0          = (*LPUART_TYPE)(unsafe.Pointer(uintptr(LPUART0_BASE)))
	LPUART1          = (*LPUART_TYPE)(unsafe.Pointer(uintptr(LPUART1_BASE)))
	LPUART2          = (*LPUART_TYPE)(unsafe.Pointer(uintptr(LPUART2_BASE)))
	LPUART3          = (*LPUART_TYPE)(unsafe.Pointer(uintptr(LPUART3_BASE)))
	PORTA            = (*PORT_TYPE)(unsafe.Pointer(uintptr(PORTA_BASE)))
	PORTB            = (*PORT_TYPE)(unsafe.Pointer(uintptr(PORTB_BASE)))
	PORTC            = (*PORT_TYPE)(unsafe.Pointer(uintptr(PORTC_BASE)))
	PORTD            = (*PORT_TYPE)(unsafe.Pointer(uintptr(PORTD_BASE)))
	PORTE            = (*PORT_TYPE)(unsafe.Pointer(uintptr(PORTE_BASE)))
	LPCMP0           = (*LPCMP_TYPE)(unsafe.Pointer(uintptr(LPCMP0_BASE)))
	LPCMP1           = (*LPCMP_TYPE)(unsafe.Pointer(uintptr(LPCMP1_BASE)))
	VREF             = (*VREF_TYPE)(unsafe.Pointer(uintptr(VREF_BASE)))
	EWM              = (*EWM_TYPE)(unsafe.Pointer(uintptr(EWM_BASE)))
	MUB              = (*MU_TYPE)(unsafe.Pointer(uintptr(MUB_BASE)))
	GPIOA            = (*GPIO_TYPE)(unsafe.Pointer(uintptr(GPIOA_BASE)))
	GPIOB            = (*GPIO_TYPE)(unsafe.Pointer(uintptr(GPIOB_BASE)))
	GPIOC            = (*GPIO_TYPE)(unsafe.Pointer(uintptr(GPIOC_BASE)))
	GPIOD            = (*GPIO_TYPE)(unsafe.Pointer(uintptr(GPIOD_BASE)))
	GPIOE            = (*GPIO_TYPE)(unsafe.Pointer(uintptr(GPIOE_BASE)))
	FGPIOE           = (*FGPIO_TYPE)(unsafe.Pointer(uintptr(FGPIOE_BASE)))
	CMC1             = (*CMC_TYPE)(unsafe.Pointer(uintptr(CMC1_BASE)))
	LLWU0            = (*LLWU_TYPE)(unsafe.Pointer(uintptr(LLWU0_BASE)))
	LLWU1            = (*LLWU_TYPE)(unsafe.Pointer(uintptr(LLWU1_BASE)))
	SPM              = (*SPM_TYPE)(unsafe.Pointer(uintptr(SPM_BASE)))
	SCG              = (*SCG_TYPE)(unsafe.Pointer(uintptr(SCG_BASE)))
	SIM              = (*SIM_TYPE)(unsafe.Pointer(uintptr(SIM_BASE)))
	TRGMUX0          = (*TRGMUX_TYPE)(unsafe.Pointer(uintptr(TRGMUX0_BASE)))
	TRGMUX1          = (*TRGMUX_TYPE)(unsafe.Pointer(uintptr(TRGMUX1_BASE)))
	MSCM             = (*MSCM_TYPE)(unsafe.Pointer(uintptr(MSCM_BASE)))
	EVENT            = (*EVENT_TYPE)(unsafe.Pointer(uintptr(EVENT_BASE)))
	CAU3             = (*CAU3_TYPE)(unsafe.Pointer(uintptr(CAU3_BASE)))
	TRNG             = (*TRNG_TYPE)(unsafe.Pointer(uintptr(TRNG_BASE)))
	EMVSIM0          = (*EMVSIM_TYPE)(unsafe.Pointer(uintptr(EMVSIM0_BASE)))
	FLEXIO0          = (*FLEXIO_TYPE)(unsafe.Pointer(uintptr(FLEXIO0_BASE)))
	I2S0             = (*I2S_TYPE)(unsafe.Pointer(uintptr(I2S0_BASE)))
	USDHC0           = (*USDHC_TYPE)(unsafe.Pointer(uintptr(USDHC0_BASE)))
	USB0             = (*USB_TYPE)(unsafe.Pointer(uintptr(USB0_BASE)))
	LPADC0           = (*LPADC_TYPE)(unsafe.Pointer(uintptr(LPADC0_BASE)))
	LPDAC0           = (*LPDAC_TYPE)(unsafe.Pointer(uintptr(LPDAC0_BASE)))
	RSIM             = (*RSIM_TYPE)(unsafe.Pointer(uintptr(RSIM_BASE)))
)

// Instances of each type in ascending address order. Index i of these
// arrays is instance index i in Registry.
var (
	DMA_BASE_PTRS  = [1]*DMA_TYPE{DMA1}
	DMA_BASE_ADDRS = [1]uintptr{DMA1_BASE}
	DMA_IRQS       = [1][]irq.IRQ{{IRQ_DMA1_04, IRQ_DMA1_15, IRQ_DMA1_26, IRQ_DMA1_37, IRQ_DMA1_Error}}

	DMAMUX_BASE_PTRS  = [1]*DMAMUX_TYPE{DMAMUX1}
	DMAMUX_BASE_ADDRS = [1]uintptr{DMAMUX1_BASE}
	DMAMUX_IRQS       = [1][]irq.IRQ{nil}

	INTMUX_BASE_PTRS  = [1]*INTMUX_TYPE{INTMUX1}
	INTMUX_BASE_ADDRS = [1]uintptr{INTMUX1_BASE}
	INTMUX_IRQS       = [1][]irq.IRQ{{IRQ_INTMUX1_0, IRQ_INTMUX1_1, IRQ_INTMUX1_2, IRQ_INTMUX1_3, IRQ_INTMUX1_4, IRQ_INTMUX1_5, IRQ_INTMUX1_6, IRQ_INTMUX1_7}}

	SEMA42_BASE_PTRS  = [2]*SEMA42_TYPE{SEMA420, SEMA421}
	SEMA42_BASE_ADDRS = [2]uintptr{SEMA420_BASE, SEMA421_BASE}
	SEMA42_IRQS       = [2][]irq.IRQ{nil, nil}

	FTFE_BASE_PTRS  = [1]*FTFE_TYPE{FTFE}
	FTFE_BASE_ADDRS = [1]uintptr{FTFE_BASE}
	FTFE_IRQS       = [1][]irq.IRQ{{IRQ_FTFE_Command_Complete, IRQ_FTFE_Read_Collision}}

	NV_BASE_PTRS  = [1]*NV_TYPE{FTFE_FlashConfig}
	NV_BASE_ADDRS = [1]uintptr{FTFE_FlashConfig_BASE}
	NV_IRQS       = [1][]irq.IRQ{nil}

	SMC_BASE_PTRS  = [2]*SMC_TYPE{SMC0, SMC1}
	SMC_BASE_ADDRS = [2]uintptr{SMC0_BASE, SMC1_BASE}
	SMC_IRQS       = [2][]irq.IRQ{nil, nil}

	PCC_BASE_PTRS  = [2]*PCC_TYPE{PCC0, PCC1}
	PCC_BASE_ADDRS = [2]uintptr{PCC0_BASE, PCC1_BASE}
	PCC_IRQS       = [2][]irq.IRQ{nil, nil}

	WDOG_BASE_PTRS  = [2]*WDOG_TYPE{WDOG0, WDOG1}
	WDOG_BASE_ADDRS = [2]uintptr{WDOG0_BASE, WDOG1_BASE}
	WDOG_IRQS       = [2][]irq.IRQ{nil, {IRQ_WDOG1}}

	CRC_BASE_PTRS  = [1]*CRC_TYPE{CRC0}
	CRC_BASE_ADDRS = [1]uintptr{CRC0_BASE}
	CRC_IRQS       = [1][]irq.IRQ{nil}

	LPIT_BASE_PTRS  = [2]*LPIT_TYPE{LPIT0, LPIT1}
	LPIT_BASE_ADDRS = [2]uintptr{LPIT0_BASE, LPIT1_BASE}
	LPIT_IRQS       = [2][]irq.IRQ{nil, {IRQ_LPIT1}}

	RTC_BASE_PTRS  = [1]*RTC_TYPE{RTC}
	RTC_BASE_ADDRS = [1]uintptr{RTC_BASE}
	RTC_IRQS       = [1][]irq.IRQ{{IRQ_RTC}}

	LPTMR_BASE_PTRS  = [3]*LPTMR_TYPE{LPTMR0, LPTMR1, LPTMR2}
	LPTMR_BASE_ADDRS = [3]uintptr{LPTMR0_BASE, LPTMR1_BASE, LPTMR2_BASE}
	LPTMR_IRQS       = [3][]irq.IRQ{{IRQ_LPTMR0}, {IRQ_LPTMR1}, {IRQ_LPTMR2}}

	TSTMR_BASE_PTRS  = [1]*TSTMR_TYPE{TSTMRB}
	TSTMR_BASE_ADDRS = [1]uintptr{TSTMRB_BASE}
	TSTMR_IRQS       = [1][]irq.IRQ{nil}

	TPM_BASE_PTRS  = [4]*TPM_TYPE{TPM0, TPM1, TPM2, TPM3}
	TPM_BASE_ADDRS = [4]uintptr{TPM0_BASE, TPM1_BASE, TPM2_BASE, TPM3_BASE}
	TPM_IRQS       = [4][]irq.IRQ{{IRQ_TPM0}, {IRQ_TPM1}, {IRQ_TPM2}, {IRQ_TPM3}}

	LPI2C_BASE_PTRS  = [4]*LPI2C_TYPE{LPI2C0, LPI2C1, LPI2C2, LPI2C3}
	LPI2C_BASE_ADDRS = [4]uintptr{LPI2C0_BASE, LPI2C1_BASE, LPI2C2_BASE, LPI2C3_BASE}
	LPI2C_IRQS       = [4][]irq.IRQ{{IRQ_LPI2C0}, {IRQ_LPI2C1}, {IRQ_LPI2C2}, {IRQ_LPI2C3}}

	LPSPI_BASE_PTRS  = [4]*LPSPI_TYPE{LPSPI0, LPSPI1, LPSPI2, LPSPI3}
	LPSPI_BASE_ADDRS = [4]uintptr{LPSPI0_BASE, LPSPI1_BASE, LPSPI2_BASE, LPSPI3_BASE}
	LPSPI_IRQS       = [4][]irq.IRQ{{IRQ_LPSPI0}, {IRQ_LPSPI1}, {IRQ_LPSPI2}, {IRQ_LPSPI3}}

	LPUART_BASE_PTRS  = [4]*LPUART_TYPE{LPUART0, LPUART1, LPUART2, LPUART3}
	LPUART_BASE_ADDRS = [4]uintptr{LPUART0_BASE, LPUART1_BASE, LPUART2_BASE, LPUART3_BASE}
	LPUART_IRQS       = [4][]irq.IRQ{{IRQ_LPUART0}, {IRQ_LPUART1}, {IRQ_LPUART2}, {IRQ_LPUART3}}

	PORT_BASE_PTRS  = [5]*PORT_TYPE{PORTA, PORTB, PORTC, PORTD, PORTE}
	PORT_BASE_ADDRS = [5]uintptr{PORTA_BASE, PORTB_BASE, PORTC_BASE, PORTD_BASE, PORTE_BASE}
	PORT_IRQS       = [5][]irq.IRQ{{IRQ_PORTA}, {IRQ_PORTB}, {IRQ_PORTC}, {IRQ_PORTD}, {IRQ_PORTE}}

	LPCMP_BASE_PTRS  = [2]*LPCMP_TYPE{LPCMP0, LPCMP1}
	LPCMP_BASE_ADDRS = [2]uintptr{LPCMP0_BASE, LPCMP1_BASE}
	LPCMP_IRQS       = [2][]irq.IRQ{{IRQ_LPCMP0}, {IRQ_LPCMP1}}

	VREF_BASE_PTRS  = [1]*VREF_TYPE{VREF}
	VREF_BASE_ADDRS = [1]uintptr{VREF_BASE}
	VREF_IRQS       = [1][]irq.IRQ{nil}

	EWM_BASE_PTRS  = [1]*EWM_TYPE{EWM}
	EWM_BASE_ADDRS = [1]uintptr{EWM_BASE}
	EWM_IRQS       = [1][]irq.IRQ{{IRQ_EWM}}

	MU_BASE_PTRS  = [1]*MU_TYPE{MUB}
	MU_BASE_ADDRS = [1]uintptr{MUB_BASE}
	MU_IRQS       = [1][]irq.IRQ{{IRQ_MUB}}

	GPIO_BASE_PTRS  = [5]*GPIO_TYPE{GPIOE, GPIOA, GPIOB, GPIOC, GPIOD}
	GPIO_BASE_ADDRS = [5]uintptr{GPIOE_BASE, GPIOA_BASE, GPIOB_BASE, GPIOC_BASE, GPIOD_BASE}
	GPIO_IRQS       = [5][]irq.IRQ{nil, nil, nil, nil, nil}

	FGPIO_BASE_PTRS  = [1]*FGPIO_TYPE{FGPIOE}
	FGPIO_BASE_ADDRS = [1]uintptr{FGPIOE_BASE}
	FGPIO_IRQS       = [1][]irq.IRQ{nil}

	CMC_BASE_PTRS  = [1]*CMC_TYPE{CMC1}
	CMC_BASE_ADDRS = [1]uintptr{CMC1_BASE}
	CMC_IRQS       = [1][]irq.IRQ{{IRQ_CMC1}}

	LLWU_BASE_PTRS  = [2]*LLWU_TYPE{LLWU0, LLWU1}
	LLWU_BASE_ADDRS = [2]uintptr{LLWU0_BASE, LLWU1_BASE}
	LLWU_IRQS       = [2][]irq.IRQ{nil, {IRQ_LLWU1}}

	SPM_BASE_PTRS  = [1]*SPM_TYPE{SPM}
	SPM_BASE_ADDRS = [1]uintptr{SPM_BASE}
	SPM_IRQS       = [1][]irq.IRQ{{IRQ_SPM}}

	SCG_BASE_PTRS  = [1]*SCG_TYPE{SCG}
	SCG_BASE_ADDRS = [1]uintptr{SCG_BASE}
	SCG_IRQS       = [1][]irq.IRQ{{IRQ_SCG}}

	SIM_BASE_PTRS  = [1]*SIM_TYPE{SIM}
	SIM_BASE_ADDRS = [1]uintptr{SIM_BASE}
	SIM_IRQS       = [1][]irq.IRQ{nil}

	TRGMUX_BASE_PTRS  = [2]*TRGMUX_TYPE{TRGMUX0, TRGMUX1}
	TRGMUX_BASE_ADDRS = [2]uintptr{TRGMUX0_BASE, TRGMUX1_BASE}
	TRGMUX_IRQS       = [2][]irq.IRQ{nil, nil}

	MSCM_BASE_PTRS  = [1]*MSCM_TYPE{MSCM}
	MSCM_BASE_ADDRS = [1]uintptr{MSCM_BASE}
	MSCM_IRQS       = [1][]irq.IRQ{nil}

	EVENT_BASE_PTRS  = [1]*EVENT_TYPE{EVENT}
	EVENT_BASE_ADDRS = [1]uintptr{EVENT_BASE}
	EVENT_IRQS       = [1][]irq.IRQ{nil}

	CAU3_BASE_PTRS  = [1]*CAU3_TYPE{CAU3}
	CAU3_BASE_ADDRS = [1]uintptr{CAU3_BASE}
	CAU3_IRQS       = [1][]irq.IRQ{{IRQ_CAU3_Task_Complete, IRQ_CAU3_Security_Violation}}

	TRNG_BASE_PTRS  = [1]*TRNG_TYPE{TRNG}
	TRNG_BASE_ADDRS = [1]uintptr{TRNG_BASE}
	TRNG_IRQS       = [1][]irq.IRQ{{IRQ_TRNG}}

	EMVSIM_BASE_PTRS  = [1]*EMVSIM_TYPE{EMVSIM0}
	EMVSIM_BASE_ADDRS = [1]uintptr{EMVSIM0_BASE}
	EMVSIM_IRQS       = [1][]irq.IRQ{{IRQ_EMVSIM0}}

	FLEXIO_BASE_PTRS  = [1]*FLEXIO_TYPE{FLEXIO0}
	FLEXIO_BASE_ADDRS = [1]uintptr{FLEXIO0_BASE}
	FLEXIO_IRQS       = [1][]irq.IRQ{{IRQ_FLEXIO0}}

	I2S_BASE_PTRS  = [1]*I2S_TYPE{I2S0}
	I2S_BASE_ADDRS = [1]uintptr{I2S0_BASE}
	I2S_IRQS       = [1][]irq.IRQ{{IRQ_I2S0}}

	USDHC_BASE_PTRS  = [1]*USDHC_TYPE{USDHC0}
	USDHC_BASE_ADDRS = [1]uintptr{USDHC0_BASE}
	USDHC_IRQS       = [1][]irq.IRQ{{IRQ_USDHC0}}

	USB_BASE_PTRS  = [1]*USB_TYPE{USB0}
	USB_BASE_ADDRS = [1]uintptr{USB0_BASE}
	USB_IRQS       = [1][]irq.IRQ{{IRQ_USB0}}

	LPADC_BASE_PTRS  = [1]*LPADC_TYPE{LPADC0}
	LPADC_BASE_ADDRS = [1]uintptr{LPADC0_BASE}
	LPADC_IRQS       = [1][]irq.IRQ{{IRQ_ADC0}}

	LPDAC_BASE_PTRS  = [1]*LPDAC_TYPE{LPDAC0}
	LPDAC_BASE_ADDRS = [1]uintptr{LPDAC0_BASE}
	LPDAC_IRQS       = [1][]irq.IRQ{{IRQ_LPDAC0}}

	RSIM_BASE_PTRS  = [1]*RSIM_TYPE{RSIM}
	RSIM_BASE_ADDRS = [1]uintptr{RSIM_BASE}
	RSIM_IRQS       = [1][]irq.IRQ{{IRQ_RF0_0, IRQ_RF0_1}}
)

// Registry lists every peripheral instance of the device with the vectors
// that service it. GPIO and FGPIO have no vectors of their own; pin
// interrupts are raised by PORT.
var Registry = periph.MustRegistry(Vectors,
	periph.Type{Name: "DMA", Block: DMA_BLOCK, Instances: []periph.Instance{
		{Name: "DMA1", Base: DMA1_BASE, IRQs: DMA_IRQS[0]},
	}},
	periph.Type{Name: "DMAMUX", Block: DMAMUX_BLOCK, Instances: []periph.Instance{
		{Name: "DMAMUX1", Base: DMAMUX1_BASE},
	}},
	periph.Type{Name: "INTMUX", Block: INTMUX_BLOCK, Instances: []periph.Instance{
		{Name: "INTMUX1", Base: INTMUX1_BASE, IRQs: INTMUX_IRQS[0]},
	}},
	periph.Type{Name: "SEMA42", Block: SEMA42_BLOCK, Instances: []periph.Instance{
		{Name: "SEMA420", Base: SEMA420_BASE},
		{Name: "SEMA421", Base: SEMA421_BASE},
	}},
	periph.Type{Name: "FTFE", Block: FTFE_BLOCK, Instances: []periph.Instance{
		{Name: "FTFE", Base: FTFE_BASE, IRQs: FTFE_IRQS[0]},
	}},
	periph.Type{Name: "NV", Block: NV_BLOCK, Instances: []periph.Instance{
		{Name: "FTFE_FlashConfig", Base: FTFE_FlashConfig_BASE},
	}},
	periph.Type{Name: "SMC", Block: SMC_BLOCK, Instances: []periph.Instance{
		{Name: "SMC0", Base: SMC0_BASE},
		{Name: "SMC1", Base: SMC1_BASE},
	}},
	periph.Type{Name: "PCC", Block: PCC_BLOCK, Instances: []periph.Instance{
		{Name: "PCC0", Base: PCC0_BASE},
		{Name: "PCC1", Base: PCC1_BASE},
	}},
	periph.Type{Name: "WDOG", Block: WDOG_BLOCK, Instances: []periph.Instance{
		{Name: "WDOG0", Base: WDOG0_BASE},
		{Name: "WDOG1", Base: WDOG1_BASE, IRQs: WDOG_IRQS[1]},
	}},
	periph.Type{Name: "CRC", Block: CRC_BLOCK, Instances: []periph.Instance{
		{Name: "CRC0", Base: CRC0_BASE},
	}},
	periph.Type{Name: "LPIT", Block: LPIT_BLOCK, Instances: []periph.Instance{
		{Name: "LPIT0", Base: LPIT0_BASE},
		{Name: "LPIT1", Base: LPIT1_BASE, IRQs: LPIT_IRQS[1]},
	}},
	periph.Type{Name: "RTC", Block: RTC_BLOCK, Instances: []periph.Instance{
		{Name: "RTC", Base: RTC_BASE, IRQs: RTC_IRQS[0]},
	}},
	periph.Type{Name: "LPTMR", Block: LPTMR_BLOCK, Instances: []periph.Instance{
		{Name: "LPTMR0", Base: LPTMR0_BASE, IRQs: LPTMR_IRQS[0]},
		{Name: "LPTMR1", Base: LPTMR1_BASE, IRQs: LPTMR_IRQS[1]},
		{Name: "LPTMR2", Base: LPTMR2_BASE, IRQs: LPTMR_IRQS[2]},
	}},
	periph.Type{Name: "TSTMR", Block: TSTMR_BLOCK, Instances: []periph.Instance{
		{Name: "TSTMRB", Base: TSTMRB_BASE},
	}},
	periph.Type{Name: "TPM", Block: TPM_BLOCK, Instances: []periph.Instance{
		{Name: "TPM0", Base: TPM0_BASE, IRQs: TPM_IRQS[0]},
		{Name: "TPM1", Base: TPM1_BASE, IRQs: TPM_IRQS[1]},
		{Name: "TPM2", Base: TPM2_BASE, IRQs: TPM_IRQS[2]},
		{Name: "TPM3", Base: TPM3_BASE, IRQs: TPM_IRQS[3]},
	}},
	periph.Type{Name: "LPI2C", Block: LPI2C_BLOCK, Instances: []periph.Instance{
		{Name: "LPI2C0", Base: LPI2C0_BASE, IRQs: LPI2C_IRQS[0]},
		{Name: "LPI2C1", Base: LPI2C1_BASE, IRQs: LPI2C_IRQS[1]},
		{Name: "LPI2C2", Base: LPI2C2_BASE, IRQs: LPI2C_IRQS[2]},
		{Name: "LPI2C3", Base: LPI2C3_BASE, IRQs: LPI2C_IRQS[3]},
	}},
	periph.Type{Name: "LPSPI", Block: LPSPI_BLOCK, Instances: []periph.Instance{
		{Name: "LPSPI0", Base: LPSPI0_BASE, IRQs: LPSPI_IRQS[0]},
		{Name: "LPSPI1", Base: LPSPI1_BASE, IRQs: LPSPI_IRQS[1]},
		{Name: "LPSPI2", Base: LPSPI2_BASE, IRQs: LPSPI_IRQS[2]},
		{Name: "LPSPI3", Base: LPSPI3_BASE, IRQs: LPSPI_IRQS[3]},
	}},
	periph.Type{Name: "LPUART", Block: LPUART_BLOCK, Instances: []periph.Instance{
		{Name: "LPUART0", Base: LPUART0_BASE, IRQs: LPUART_IRQS[0]},
		{Name: "LPUART1", Base: LPUART1_BASE, IRQs: LPUART_IRQS[1]},
		{Name: "LPUART2", Base: LPUART2_BASE, IRQs: LPUART_IRQS[2]},
		{Name: "LPUART3", Base: LPUART3_BASE, IRQs: LPUART_IRQS[3]},
	}},
	periph.Type{Name: "PORT", Block: PORT_BLOCK, Instances: []periph.Instance{
		{Name: "PORTA", Base: PORTA_BASE, IRQs: PORT_IRQS[0]},
		{Name: "PORTB", Base: PORTB_BASE, IRQs: PORT_IRQS[1]},
		{Name: "PORTC", Base: PORTC_BASE, IRQs: PORT_IRQS[2]},
		{Name: "PORTD", Base: PORTD_BASE, IRQs: PORT_IRQS[3]},
		{Name: "PORTE", Base: PORTE_BASE, IRQs: PORT_IRQS[4]},
	}},
	periph.Type{Name: "LPCMP", Block: LPCMP_BLOCK, Instances: []periph.Instance{
		{Name: "LPCMP0", Base: LPCMP0_BASE, IRQs: LPCMP_IRQS[0]},
		{Name: "LPCMP1", Base: LPCMP1_BASE, IRQs: LPCMP_IRQS[1]},
	}},
	periph.Type{Name: "VREF", Block: VREF_BLOCK, Instances: []periph.Instance{
		{Name: "VREF", Base: VREF_BASE},
	}},
	periph.Type{Name: "EWM", Block: EWM_BLOCK, Instances: []periph.Instance{
		{Name: "EWM", Base: EWM_BASE, IRQs: EWM_IRQS[0]},
	}},
	periph.Type{Name: "MU", Block: MU_BLOCK, Instances: []periph.Instance{
		{Name: "MUB", Base: MUB_BASE, IRQs: MU_IRQS[0]},
	}},
	periph.Type{Name: "GPIO", Block: GPIO_BLOCK, Instances: []periph.Instance{
		{Name: "GPIOE", Base: GPIOE_BASE},
		{Name: "GPIOA", Base: GPIOA_BASE},
		{Name: "GPIOB", Base: GPIOB_BASE},
		{Name: "GPIOC", Base: GPIOC_BASE},
		{Name: "GPIOD", Base: GPIOD_BASE},
	}},
	periph.Type{Name: "FGPIO", Block: FGPIO_BLOCK, Instances: []periph.Instance{
		{Name: "FGPIOE", Base: FGPIOE_BASE},
	}},
	periph.Type{Name: "CMC", Block: CMC_BLOCK, Instances: []periph.Instance{
		{Name: "CMC1", Base: CMC1_BASE, IRQs: CMC_IRQS[0]},
	}},
	periph.Type{Name: "LLWU", Block: LLWU_BLOCK, Instances: []periph.Instance{
		{Name: "LLWU0", Base: LLWU0_BASE},
		{Name: "LLWU1", Base: LLWU1_BASE, IRQs: LLWU_IRQS[1]},
	}},
	periph.Type{Name: "SPM", Block: SPM_BLOCK, Instances: []periph.Instance{
		{Name: "SPM", Base: SPM_BASE, IRQs: SPM_IRQS[0]},
	}},
	periph.Type{Name: "SCG", Block: SCG_BLOCK, Instances: []periph.Instance{
		{Name: "SCG", Base: SCG_BASE, IRQs: SCG_IRQS[0]},
	}},
	periph.Type{Name: "SIM", Block: SIM_BLOCK, Instances: []periph.Instance{
		{Name: "SIM", Base: SIM_BASE},
	}},
	periph.Type{Name: "TRGMUX", Block: TRGMUX_BLOCK, Instances: []periph.Instance{
		{Name: "TRGMUX0", Base: TRGMUX0_BASE},
		{Name: "TRGMUX1", Base: TRGMUX1_BASE},
	}},
	periph.Type{Name: "MSCM", Block: MSCM_BLOCK, Instances: []periph.Instance{
		{Name: "MSCM", Base: MSCM_BASE},
	}},
	periph.Type{Name: "EVENT", Block: EVENT_BLOCK, Instances: []periph.Instance{
		{Name: "EVENT", Base: EVENT_BASE},
	}},
	periph.Type{Name: "CAU3", Block: CAU3_BLOCK, Instances: []periph.Instance{
		{Name: "CAU3", Base: CAU3_BASE, IRQs: CAU3_IRQS[0]},
	}},
	periph.Type{Name: "TRNG", Block: TRNG_BLOCK, Instances: []periph.Instance{
		{Name: "TRNG", Base: TRNG_BASE, IRQs: TRNG_IRQS[0]},
	}},
	periph.Type{Name: "EMVSIM", Block: EMVSIM_BLOCK, Instances: []periph.Instance{
		{Name: "EMVSIM0", Base: EMVSIM0_BASE, IRQs: EMVSIM_IRQS[0]},
	}},
	periph.Type{Name: "FLEXIO", Block: FLEXIO_BLOCK, Instances: []periph.Instance{
		{Name: "FLEXIO0", Base: FLEXIO0_BASE, IRQs: FLEXIO_IRQS[0]},
	}},
	periph.Type{Name: "I2S", Block: I2S_BLOCK, Instances: []periph.Instance{
		{Name: "I2S0", Base: I2S0_BASE, IRQs: I2S_IRQS[0]},
	}},
	periph.Type{Name: "USDHC", Block: USDHC_BLOCK, Instances: []periph.Instance{
		{Name: "USDHC0", Base: USDHC0_BASE, IRQs: USDHC_IRQS[0]},
	}},
	periph.Type{Name: "USB", Block: USB_BLOCK, Instances: []periph.Instance{
		{Name: "USB0", Base: USB0_BASE, IRQs: USB_IRQS[0]},
	}},
	periph.Type{Name: "LPADC", Block: LPADC_BLOCK, Instances: []periph.Instance{
		{Name: "LPADC0", Base: LPADC0_BASE, IRQs: LPADC_IRQS[0]},
	}},
	periph.Type{Name: "LPDAC", Block: LPDAC_BLOCK, Instances: []periph.Instance{
		{Name: "LPDAC0", Base: LPDAC0_BASE, IRQs: LPDAC_IRQS[0]},
	}},
	periph.Type{Name: "RSIM", Block: RSIM_BLOCK, Instances: []periph.Instance{
		{Name: "RSIM", Base: RSIM_BASE, IRQs: RSIM_IRQS[0]},
	}},
)
